package clockcode

type UpsertRequest struct {
	Code        string  `json:"code" binding:"required,max=32"`
	EmployeeID  string  `json:"employee_id" binding:"required,max=64"`
	Description *string `json:"description" binding:"omitempty,max=255"`
}

type ListRequest struct {
	Search string `form:"q" binding:"max=64"`
}

type CodeResponse struct {
	ID          string  `json:"id"`
	Code        string  `json:"code"`
	EmployeeID  string  `json:"employee_id"`
	Description *string `json:"description,omitempty"`
	Active      bool    `json:"active"`
	CreatedAt   string  `json:"created_at,omitempty"`
	UpdatedAt   string  `json:"updated_at,omitempty"`
}

type ResolveResponse struct {
	Code        string  `json:"code"`
	EmployeeID  string  `json:"employee_id"`
	Description *string `json:"description,omitempty"`
}

// ImportRow is one parsed spreadsheet line; Row is the 1-based sheet row.
type ImportRow struct {
	Row         int
	Code        string
	EmployeeID  string
	Description string
}

type ImportFailure struct {
	Row     int    `json:"row"`
	Code    string `json:"code,omitempty"`
	Message string `json:"message"`
}

type ImportResponse struct {
	Processed int             `json:"processed"`
	Errors    int             `json:"errors"`
	Failures  []ImportFailure `json:"failures,omitempty"`
}
