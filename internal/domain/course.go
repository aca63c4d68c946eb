package domain

// Topic a playable unit inside a module
type Topic struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Order int    `json:"order"`
}

// Module ordered group of topics inside a course
type Module struct {
	ID     string  `json:"id"`
	Title  string  `json:"title"`
	Order  int     `json:"order"`
	Topics []Topic `json:"topics"`
}

// Course module/topic tree fetched for the playback view
type Course struct {
	ID         string   `json:"id"`
	Title      string   `json:"title"`
	Modules    []Module `json:"modules"`
	IsEnrolled bool     `json:"is_enrolled"`
}

// ProgressUpdate completion record pushed to the remote authority
type ProgressUpdate struct {
	CourseID  string `json:"course_id"`
	ModuleID  string `json:"module_id"`
	TopicID   string `json:"topic_id"`
	Completed bool   `json:"completed"`
}
