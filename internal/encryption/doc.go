// Package encryption applies the Caesar cipher to files.
// Files are processed concurrently; results are reported in the order the files were given,
// either printed or written atomically next to their input.
package encryption
