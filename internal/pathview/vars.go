package pathview

var (
	Debug = false // set to true for verbose debug output
	// Compile time checks that every shape variant and every panel implementation is complete
	_ Shape = Sphere{}
	_ Shape = Box{}
	_ Shape = Cylinder{}
	_ Shape = Wedge{}
	_ Shape = Lens{}
	_ Panel = (*Recorder)(nil)
	_ Panel = (*RasterPanel)(nil)
)
