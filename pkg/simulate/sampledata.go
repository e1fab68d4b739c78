package simulate

// sample pools for generated demo sessions
var (
	sampleDrivers = []string{
		"Alex Keller",
		"Robin Vance",
		"Sam Okafor",
		"Toni Brandt",
		"Lena Fuchs",
		"Marco Silva",
		"Kim Aldana",
		"Nadia Petric",
	}
	sampleTracks = []string{
		"Silver Pines",
		"Brands Creek",
		"Monzetta",
		"Nordwald",
		"Laguna Verde",
		"Redgate Park",
	}
)
