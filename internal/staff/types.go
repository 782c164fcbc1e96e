package staff

import "time"

// CreateEmployeeRequest is the payload for POST /api/employees. Salary is a
// pointer so an omitted salary is distinguishable from an explicit zero.
type CreateEmployeeRequest struct {
	EmployeeID     string   `json:"employeeId"`
	FullName       string   `json:"fullName"`
	NIC            string   `json:"nic"`
	DateOfBirth    string   `json:"dateOfBirth"`
	Email          string   `json:"email"`
	Phone          string   `json:"phone"`
	Address        string   `json:"address"`
	Department     string   `json:"department"`
	Position       string   `json:"position"`
	DateOfJoining  string   `json:"dateOfJoining"`
	Salary         *float64 `json:"salary"`
	EmploymentType string   `json:"employmentType"`
}

// Employee is the item stored in the employees DynamoDB table.
type Employee struct {
	EmployeeID     string    `dynamodbav:"employee_id"` // PK
	FullName       string    `dynamodbav:"full_name"`
	NIC            string    `dynamodbav:"nic"`
	DateOfBirth    time.Time `dynamodbav:"date_of_birth"`
	Email          string    `dynamodbav:"email"`
	Phone          string    `dynamodbav:"phone"`
	Address        string    `dynamodbav:"address"`
	Department     string    `dynamodbav:"department"`
	Position       string    `dynamodbav:"position"`
	DateOfJoining  time.Time `dynamodbav:"date_of_joining"`
	Salary         float64   `dynamodbav:"salary"`
	EmploymentType string    `dynamodbav:"employment_type"`
	AllowanceRate  float64   `dynamodbav:"allowance_rate"`
	TotalSalary    float64   `dynamodbav:"total_salary"`
	CreatedAt      time.Time `dynamodbav:"created_at"`
	UpdatedAt      time.Time `dynamodbav:"updated_at"`
}
