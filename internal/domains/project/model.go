package project

// Status tracks where a project sits in its lifecycle.
type Status string

const (
	StatusNew        Status = "NEW"
	StatusUpcoming   Status = "UPCOMING"
	StatusInProgress Status = "IN_PROGRESS"
	StatusCompleted  Status = "COMPLETED"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusNew, StatusUpcoming, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

// Project is a portfolio entry. Listing order follows the explicit
// "order" field ascending, with id as the tiebreak.
type Project struct {
	ID           int64    `db:"id" json:"id"`
	Title        string   `db:"title" json:"title"`
	Description  string   `db:"description" json:"description"`
	Image        string   `db:"image" json:"image"`
	Tags         []string `db:"tags" json:"tags"`
	Status       Status   `db:"status" json:"status"`
	Github       string   `db:"github" json:"github"`
	Demo         string   `db:"demo" json:"demo"`
	Technologies []string `db:"technologies" json:"technologies"`
	Features     []string `db:"features" json:"features"`
	Order        int      `db:"order" json:"order"`
}
