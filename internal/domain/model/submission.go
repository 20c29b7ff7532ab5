package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRevision Status = "revision"
)

// ReviewableStatus reports whether s is a status an admin may set.
// Pending is only ever assigned at creation; there is no transition back to it.
func ReviewableStatus(s Status) bool {
	return s == StatusApproved || s == StatusRevision
}

type Submission struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	StudentID        string             `bson:"student_id" json:"student_id"`
	Title            string             `bson:"title" json:"title"`
	Content          string             `bson:"content" json:"content"`
	ProjectHead      string             `bson:"project_head" json:"project_head"`
	Budget           int                `bson:"budget" json:"budget"`
	Venue            string             `bson:"venue" json:"venue"`
	OrganizationName string             `bson:"organization_name" json:"organization_name"`
	EventDatetime    string             `bson:"event_datetime" json:"event_datetime"`
	Status           Status             `bson:"status" json:"status"`
	Comments         []Comment          `bson:"comments" json:"comments"`
	CreatedAt        time.Time          `bson:"created_at" json:"created_at"`
}

// Comment is embedded in its parent submission, append-only and immutable once written.
type Comment struct {
	AdminID   string    `bson:"admin_id" json:"admin_id"`
	Comment   string    `bson:"comment" json:"comment"`
	Timestamp time.Time `bson:"timestamp" json:"timestamp"`
}
