package model

type TokenClaim struct {
	UserId   uint   `json:"userId"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

type ResponseCustom struct {
	Rows       any   `json:"rows"`
	Limit      *int  `json:"limit"`
	Page       *int  `json:"page"`
	TotalCount int64 `json:"totalCount"`
}

type ArrayId struct {
	IDs []uint `json:"ids" validate:"required,min=1"`
}

type Pagination struct {
	Limit *int `query:"limit" json:"limit"`
	Page  *int `query:"page" json:"page"`
}

// UserRef là snapshot người dùng được gateway nhúng sẵn trong response
type UserRef struct {
	UserID   uint   `json:"user_id"`
	Name     string `json:"name"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Phone    string `json:"phone,omitempty"`
}

type BulkResult struct {
	Updated int             `json:"updated"`
	Failed  int             `json:"failed"`
	Errors  map[uint]string `json:"errors,omitempty"`
}
