package staff

import (
	"time"

	"github.com/HeshanJay/hotel-manager-app/internal/pricing"
	"github.com/HeshanJay/hotel-manager-app/internal/validation"
)

// Validate runs every employee registration check and accumulates all
// violations. The phone field is deliberately required-only with no format
// check; that is the documented policy for this request kind.
func Validate(req *CreateEmployeeRequest, rates *pricing.Rates, today time.Time) validation.Result {
	res := validation.NewResult()

	if validation.Missing(req.EmployeeID) {
		res.Add("employeeId", "Employee ID is required")
	}

	if validation.Missing(req.FullName) {
		res.Add("fullName", "Full name is required")
	} else if !validation.ValidName(req.FullName) {
		res.Add("fullName", "Full Name should contain only letters and spaces")
	}

	if validation.Missing(req.NIC) {
		res.Add("nic", "NIC is required")
	} else if !validation.ValidNIC(req.NIC) {
		res.Add("nic", "Invalid NIC")
	}

	if validation.Missing(req.DateOfBirth) {
		res.Add("dateOfBirth", "Date of birth is required")
	} else if parsed, err := validation.ParseDate(req.DateOfBirth); err != nil {
		res.Add("dateOfBirth", "Invalid DOB")
	} else if parsed.After(validation.DateOnly(today)) {
		res.Add("dateOfBirth", "Invalid DOB")
	}

	if validation.Missing(req.Email) {
		res.Add("email", "Email is required")
	} else if !validation.ValidStrictEmail(req.Email) {
		res.Add("email", "Invalid Email")
	}

	if validation.Missing(req.Phone) {
		res.Add("phone", "Phone number is required")
	}

	if validation.Missing(req.Address) {
		res.Add("address", "Address is required")
	}
	if validation.Missing(req.Department) {
		res.Add("department", "Department is required")
	}

	if validation.Missing(req.Position) {
		res.Add("position", "Position is required")
	} else if !validation.ValidName(req.Position) {
		res.Add("position", "Only letters and spaces allowed")
	}

	if validation.Missing(req.DateOfJoining) {
		res.Add("dateOfJoining", "Date of joining is required")
	} else if _, err := validation.ParseDate(req.DateOfJoining); err != nil {
		res.Add("dateOfJoining", "Date of joining is invalid")
	}

	if req.Salary == nil || *req.Salary <= 0 {
		res.Add("salary", "Valid salary is required")
	}

	if validation.Missing(req.EmploymentType) {
		res.Add("employmentType", "Employment type is required")
	} else if !rates.ValidEmploymentType(req.EmploymentType) {
		res.Add("employmentType", "Employment type must be Full-Time or Part-Time")
	}

	return res
}
