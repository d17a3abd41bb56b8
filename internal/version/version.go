package version

// Name and Version identify the program in dialog titles.
var (
	Name    = "recentdirs"
	Version = "1.0.0"
)
