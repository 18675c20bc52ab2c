package model

// Read-mostly reference entities: departments, majors, subjects and
// classrooms are administered out of band and only read through the API.

type Department struct {
	ID   string `json:"id" bson:"_id,omitempty"`
	Name string `json:"name" bson:"name"`
}

type Major struct {
	ID           string `json:"id" bson:"_id,omitempty"`
	DepartmentID string `json:"departmentId" bson:"department_id"`
	Name         string `json:"name" bson:"name"`
}

type Subject struct {
	ID      string `json:"id" bson:"_id,omitempty"`
	MajorID string `json:"majorId" bson:"major_id"`
	Name    string `json:"name" bson:"name"`
	Credits int    `json:"credits,omitempty" bson:"credits,omitempty"`
}

type Classroom struct {
	ID   string `json:"id" bson:"_id,omitempty"`
	Name string `json:"name" bson:"name"`
}

// TeacherOption is the (id, name) pair for teacher selection dropdowns.
type TeacherOption struct {
	ID       string `json:"id" bson:"_id"`
	FullName string `json:"fullName" bson:"full_name"`
}
