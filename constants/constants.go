package constants

const (
	ERROR_INPUT              = "Dữ liệu đầu vào không hợp lệ"
	ERROR_INTERNAL_ERROR     = "Lỗi hệ thống, vui lòng thử lại sau"
	DATA_INPUT_IS_NOT_NUMBER = "Dữ liệu đầu vào không phải là số"

	SESSION_EXPIRED = "Phiên đăng nhập đã hết hạn, vui lòng đăng nhập lại"
	LOGIN_PATH      = "/login"

	CAN_NOT_GET_ARENA    = "Không thể tải danh sách sân"
	CAN_NOT_GET_FEEDBACK = "Không thể tải danh sách đánh giá"
	CAN_NOT_GET_PAYMENT  = "Không thể tải danh sách thanh toán"
	CAN_NOT_GET_NEWS     = "Không thể tải tin tức"
	CAN_NOT_GET_STATS    = "Không thể tải số liệu thống kê"
	CAN_NOT_GET_VENUE    = "Không thể tải danh sách địa điểm"

	ARENA_NOT_FOUND    = "Không tìm thấy sân"
	FEEDBACK_NOT_FOUND = "Không tìm thấy đánh giá"
	PAYMENT_NOT_FOUND  = "Không tìm thấy thanh toán"
	NEWS_NOT_FOUND     = "Không tìm thấy bài viết"

	UPDATE_FAILED = "Cập nhật thất bại"
	DELETE_FAILED = "Xoá thất bại"
	CREATE_FAILED = "Tạo mới thất bại"

	INVALID_STATUS_TRANSITION = "Trạng thái mới không hợp lệ"
	EMPTY_ID_LIST             = "Mảng ID không được để trống"
)
