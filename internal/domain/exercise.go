package domain

// Exercise is one entry of the global movement catalog. It is not owned by
// any user; programs reference it by ID. The catalog is read-mostly and
// curated through the administrative endpoints only.
//
// Camera and Projector carry the tracking and overlay configuration consumed
// by the mobile client. Their shape varies per exercise, so they are kept as
// free-form documents rather than fixed structs.
type Exercise struct {
	ID          string                   `bson:"_id" json:"id"`
	Icon        string                   `bson:"icon" json:"icon"`
	Title       string                   `bson:"title" json:"title"`
	Description string                   `bson:"description" json:"description"`
	Category    string                   `bson:"category" json:"category"`
	Difficulty  int                      `bson:"difficulty" json:"difficulty"`
	Video       string                   `bson:"video" json:"video"`
	Muscles     []string                 `bson:"muscles" json:"muscles"`
	Security    []string                 `bson:"security" json:"security"`
	Needed      []string                 `bson:"needed" json:"needed"`
	Calories    int                      `bson:"calories" json:"calories"`
	Camera      map[string]interface{}   `bson:"camera" json:"camera"`
	Projector   []map[string]interface{} `bson:"projector" json:"projector"`
}
