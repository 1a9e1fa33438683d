package dd

// Section names of a .dd file.
const (
	SectionMetadata   = "Metadata"
	SectionDifficulty = "Difficulty"
	SectionHitObjects = "HitObjects"
	SectionEvents     = "Events"
)

// Difficulty is one playable chart of a beatmap set.
//
// Every tagged field is required when reading a file. Slices are nil when
// the file holds no entries of that kind.
type Difficulty struct {
	// Song metadata
	Artist string `dd:"Metadata,Artist"`
	Title  string `dd:"Metadata,Title"`
	Name   string `dd:"Metadata,DiffName"`
	Mapper string `dd:"Metadata,Mapper"`

	// Map metadata
	PreviewMS      int    `dd:"Metadata,PreviewPoint"`
	BackgroundPath string `dd:"Metadata,Background"`
	ThumbnailPath  string `dd:"Metadata,Thumbnail"`
	AudioPath      string `dd:"Metadata,Audio"`

	ID    int `dd:"Metadata,BeatmapID"`
	SetID int `dd:"Metadata,BeatmapsetID"`

	// Difficulty settings
	Speed       float64 `dd:"Difficulty,Speed"`
	Health      float64 `dd:"Difficulty,Health"`
	Sensitivity float64 `dd:"Difficulty,Sensitivity"`

	Notes []Note

	SpeedEvents []SpeedEvent
	BPMEvents   []BPMEvent
	FeverEvents []FeverEvent

	// UnknownEvents holds events with unrecognized type codes. It is only
	// filled when decoding with UnknownEvents(PreserveUnknownEvents).
	UnknownEvents []UnknownEvent
}

// FullName returns the display name of the chart,
// formatted as "Artist - Title [Name]".
func (d *Difficulty) FullName() string {
	return d.Artist + " - " + d.Title + " [" + d.Name + "]"
}
