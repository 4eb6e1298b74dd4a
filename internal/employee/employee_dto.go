package employee

type CreateEmployeeRequest struct {
	EmployeeCode      string  `json:"employee_code" binding:"required"`
	FullName          string  `json:"full_name" binding:"required"`
	Address           *string `json:"address"`
	BankAccountNumber *string `json:"bank_account_number"`
	BankName          *string `json:"bank_name"`
	BankBranch        *string `json:"bank_branch"`
	IFSCCode          *string `json:"ifsc_code"`
	Salary            int64   `json:"salary" binding:"required,gt=0"`
	Status            string  `json:"status" binding:"omitempty,oneof=active inactive on_leave"`
}

// UpdateEmployeeRequest uses pointers so absent fields stay untouched.
type UpdateEmployeeRequest struct {
	FullName          *string `json:"full_name"`
	Address           *string `json:"address"`
	BankAccountNumber *string `json:"bank_account_number"`
	BankName          *string `json:"bank_name"`
	BankBranch        *string `json:"bank_branch"`
	IFSCCode          *string `json:"ifsc_code"`
	Salary            *int64  `json:"salary" binding:"omitempty,gt=0"`
	Status            *string `json:"status" binding:"omitempty,oneof=active inactive on_leave"`
}

type GetEmployeesFilterRequest struct {
	Status string `form:"status" binding:"omitempty,oneof=active inactive on_leave"`
	Search string `form:"search"`
}

type EmployeeResponse struct {
	ID                string  `json:"id"`
	EmployeeCode      string  `json:"employee_code"`
	FullName          string  `json:"full_name"`
	Address           *string `json:"address,omitempty"`
	BankAccountNumber *string `json:"bank_account_number,omitempty"`
	BankName          *string `json:"bank_name,omitempty"`
	BankBranch        *string `json:"bank_branch,omitempty"`
	IFSCCode          *string `json:"ifsc_code,omitempty"`
	Salary            int64   `json:"salary"`
	Status            string  `json:"status"`
	CreatedAt         string  `json:"created_at"`
	UpdatedAt         string  `json:"updated_at"`
}
