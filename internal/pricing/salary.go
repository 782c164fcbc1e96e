package pricing

// SalaryBreakdown itemizes an employee's computed pay.
type SalaryBreakdown struct {
	BaseSalary float64 `json:"salary"`
	Allowance  float64 `json:"allowanceRate"`
	Total      float64 `json:"totalSalary"`
}

// ComputeSalary applies the employment-type allowance to a base salary.
func (r *Rates) ComputeSalary(salary float64, employmentType string) SalaryBreakdown {
	allowance := salary * r.AllowanceRates[employmentType]
	return SalaryBreakdown{
		BaseSalary: salary,
		Allowance:  allowance,
		Total:      salary + allowance,
	}
}
