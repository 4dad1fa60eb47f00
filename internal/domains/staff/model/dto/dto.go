package dto

import (
	"time"

	"hotelier/internal/domains/staff/model"
	"hotelier/shared"
	gDto "hotelier/shared/dto"
	gModel "hotelier/shared/model"
	"hotelier/shared/timezone"
)

const dateLayout = "2006-01-02"

type CreateStaffRequest struct {
	Name     string  `json:"name"      validate:"required,max=100"`
	Position string  `json:"position"  validate:"required,max=50"`
	Phone    string  `json:"phone"     validate:"omitempty,max=20"`
	Salary   float64 `json:"salary"    validate:"omitempty"`
	HireDate string  `json:"hire_date" validate:"required,datetime=2006-01-02"`
}

func (c *CreateStaffRequest) ToModel(user string) model.Staff {
	hireDate, _ := time.Parse(dateLayout, c.HireDate)

	return model.Staff{
		Name:     c.Name,
		Position: c.Position,
		Phone:    c.Phone,
		Salary:   c.Salary,
		HireDate: hireDate,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type CreateStaffResponse struct {
	ID int64 `json:"id"`
}

type UpdateStaffRequest struct {
	Name     string   `db:"name"     json:"name"     validate:"omitempty,max=100"`
	Position string   `db:"position" json:"position" validate:"omitempty,max=50"`
	Phone    string   `db:"phone"    json:"phone"    validate:"omitempty,max=20"`
	Salary   *float64 `db:"salary"   json:"salary"   validate:"omitempty"`
}

type StaffResponse struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Position string  `json:"position"`
	Phone    string  `json:"phone"`
	Salary   float64 `json:"salary"`
	HireDate string  `json:"hire_date"`
	gDto.Metadata
}

func (r *StaffResponse) FromModel(model model.Staff) {
	r.ID = model.ID
	r.Name = model.Name
	r.Position = model.Position
	r.Phone = model.Phone
	r.Salary = model.Salary
	r.HireDate = model.HireDate.Format(dateLayout)
	r.Metadata.FromModel(model.Metadata)
}

type GetStaffsResponse struct {
	Staffs    []StaffResponse `json:"staffs"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (r *GetStaffsResponse) FromModels(models []model.Staff, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Staffs = make([]StaffResponse, len(models))
	for i, mod := range models {
		r.Staffs[i].FromModel(mod)
	}
}
