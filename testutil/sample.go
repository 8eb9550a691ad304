package testutil

type SampleTask struct {
	Title  string `msgpack:"title" json:"title"`
	Done   bool   `msgpack:"done" json:"done"`
	Points int    `msgpack:"points" json:"points"`
}

func NewSampleTask(title string) SampleTask {
	return SampleTask{Title: title}
}
