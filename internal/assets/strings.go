package assets

type StringID int

const (
	AppName StringID = iota
	PreviousButton
	NextButton
	FirstArtName
	FirstArtDescription
	SecondArtName
	SecondArtDescription
	ThirdArtName
	ThirdArtDescription
	FourthArtName
	FourthArtDescription
)

var stringTable = map[StringID]string{
	AppName:              "Art Space",
	PreviousButton:       "Previous",
	NextButton:           "Next",
	FirstArtName:         "Evening Over the Harbour",
	FirstArtDescription:  "A low sun sinks into a restless sea, painted in warm oils and cold blues.",
	SecondArtName:        "Rings",
	SecondArtDescription: "Concentric bands of crimson, ochre and slate radiating from a single point.",
	ThirdArtName:         "Composition in Red, Yellow and Blue",
	ThirdArtDescription:  "Black lines divide the canvas into primary blocks balanced against white.",
	FourthArtName:        "Night Swirl",
	FourthArtDescription: "A turbulent sky spirals above a dark, quiet field.",
}

// String returns the display text for id, or "" for an unknown id.
func String(id StringID) string {
	return stringTable[id]
}
