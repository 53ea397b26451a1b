package vfs

// Size returns the total byte length of every file reachable from d.
// Directories contribute nothing themselves.
func Size(d *Directory) int64 {
	var total int64
	for _, f := range d.Files() {
		total += f.Size()
	}
	for _, sub := range d.Subdirectories() {
		total += Size(sub)
	}
	return total
}
