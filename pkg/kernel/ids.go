package kernel

import "strconv"

// ResumeID is the database-generated identifier of a stored resume
type ResumeID int64

func NewResumeID(id int64) ResumeID { return ResumeID(id) }
func (r ResumeID) Int64() int64     { return int64(r) }
func (r ResumeID) String() string   { return strconv.FormatInt(int64(r), 10) }

// JobRole is the human-readable name of a role in the JD catalog
type JobRole string

func (j JobRole) String() string { return string(j) }
