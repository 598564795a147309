// Package model defines the data structures shared by the trait exporter.
package model

// Path represents a file system path.
type Path string

// Category is a top-level folder of the traits directory.
type Category struct {
	Name  string
	Dir   Path
	Order uint32 // parsed from the leading digits of Name, 1 when absent
}

// TraitFile is a supported asset found under a category before it is encoded.
type TraitFile struct {
	Path      Path
	Category  string
	Filename  string // base name as found on disk
	Stem      string // Filename without its final extension
	Extension string // lower-cased, without the dot
	Order     uint32
	Size      int64
}
