package salary

type GenerateSalaryRequest struct {
	Month string `json:"month" binding:"required"`
}

type GenerateSalaryResponse struct {
	Created int `json:"created"`
	Skipped int `json:"skipped"`
}

type UpdateStatusRequest struct {
	Status string  `json:"status" binding:"required,oneof=pending processed failed"`
	Notes  *string `json:"notes"`
}

type BulkUpdateStatusRequest struct {
	IDs    []string `json:"ids" binding:"required,min=1,dive,uuid"`
	Status string   `json:"status" binding:"required,oneof=pending processed failed"`
	Notes  *string  `json:"notes"`
}

type ListPaymentsFilterRequest struct {
	Month  string `form:"month"`
	Status string `form:"status" binding:"omitempty,oneof=pending processed failed"`
}

type SalaryPaymentResponse struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeName string  `json:"employee_name,omitempty"`
	EmployeeCode string  `json:"employee_code,omitempty"`
	PaymentMonth string  `json:"payment_month"`
	Amount       int64   `json:"amount"`
	Status       string  `json:"status"`
	ProcessedAt  *string `json:"processed_at"`
	ProcessedBy  *string `json:"processed_by"`
	Notes        *string `json:"notes"`
	CreatedAt    string  `json:"created_at"`
}

// SalaryStatsResponse reports lifecycle counts over the filtered set.
// TotalAmount sums every payment regardless of status (total payroll
// liability); ProcessedAmount sums only what operators marked processed.
type SalaryStatsResponse struct {
	Total           int64 `json:"total"`
	Pending         int64 `json:"pending"`
	Processed       int64 `json:"processed"`
	Failed          int64 `json:"failed"`
	TotalAmount     int64 `json:"total_amount"`
	ProcessedAmount int64 `json:"processed_amount"`
}
