package domain

// Program is a named, ordered list of exercise references with descriptive
// metadata, owned by exactly one user. Its ID is a slug derived from the
// title and is only unique within one owner's program set — two users can
// each have a "cardio-intense".
//
// Exercise references are plain catalog IDs, not enforced by the store;
// a program may reference an exercise that was removed from the catalog.
type Program struct {
	ID          string   `bson:"id" json:"id"`
	Owner       string   `bson:"owner" json:"owner"`
	Icon        string   `bson:"icon" json:"icon"`
	Title       string   `bson:"title" json:"title"`
	Description string   `bson:"description" json:"description"`
	Category    string   `bson:"category" json:"category"`
	Difficulty  int      `bson:"difficulty" json:"difficulty"`
	Hint        []string `bson:"hint" json:"hint"`
	Exercises   []string `bson:"exercises" json:"exercises"`
	Rest        []int    `bson:"rest" json:"rest"` // Rest durations between exercises, in seconds
}
