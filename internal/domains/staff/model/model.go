package model

import (
	"hotelier/shared/model"
	"time"
)

const (
	TableName  = "staff"
	EntityName = "staff"

	FieldID       = "id"
	FieldName     = "name"
	FieldPosition = "position"
	FieldPhone    = "phone"
	FieldSalary   = "salary"
	FieldHireDate = "hire_date"
)

type Staff struct {
	ID       int64     `db:"id"`
	Name     string    `db:"name"`
	Position string    `db:"position"`
	Phone    string    `db:"phone"`
	Salary   float64   `db:"salary"`
	HireDate time.Time `db:"hire_date"`
	model.Metadata
}
