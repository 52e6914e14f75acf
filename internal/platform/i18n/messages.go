// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package i18n

import "golang.org/x/text/language"

// messages holds the bundled tables. English is complete; other languages
// fall back to English per key.
var messages = map[language.Tag]map[string]string{
	language.English:    english,
	language.Vietnamese: vietnamese,
}

var english = map[string]string{
	// Navigation
	"nav.brand":               "Local Library",
	"nav.home":                "Home",
	"nav.authors":             "All authors",
	"nav.books":               "All books",
	"nav.genres":              "All genres",
	"nav.bookinstances":       "All book copies",
	"nav.author_create":       "Create new author",
	"nav.book_create":         "Create new book",
	"nav.genre_create":        "Create new genre",
	"nav.bookinstance_create": "Create new book copy",

	// Page titles
	"page.home":                "Local Library Home",
	"page.author_list":         "Author List",
	"page.author_detail":       "Author",
	"page.author_create":       "Create Author",
	"page.author_update":       "Update Author",
	"page.author_delete":       "Delete Author",
	"page.book_list":           "Book List",
	"page.book_detail":         "Book",
	"page.book_create":         "Create Book",
	"page.book_update":         "Update Book",
	"page.book_delete":         "Delete Book",
	"page.genre_list":          "Genre List",
	"page.genre_detail":        "Genre",
	"page.genre_create":        "Create Genre",
	"page.genre_update":        "Update Genre",
	"page.genre_delete":        "Delete Genre",
	"page.bookinstance_list":   "Book Copy List",
	"page.bookinstance_detail": "Book Copy",
	"page.bookinstance_create": "Create Book Copy",
	"page.bookinstance_update": "Update Book Copy",
	"page.bookinstance_delete": "Delete Book Copy",
	"page.error":               "Something went wrong",

	// Home
	"home.welcome":          "Welcome to the Local Library, a catalog maintained by library staff.",
	"home.counts":           "The library has the following record counts:",
	"home.books":            "Books",
	"home.copies":           "Copies",
	"home.copies_available": "Copies available",
	"home.authors":          "Authors",
	"home.genres":           "Genres",
	"home.no_author":        "Author not found",
	"home.no_book":          "Book not found",
	"home.no_genre":         "Genre not found",
	"home.no_bookinstance":  "Book copy not found",

	// Field labels
	"field.first_name":    "First name",
	"field.family_name":   "Family name",
	"field.date_of_birth": "Date of birth",
	"field.date_of_death": "Date of death",
	"field.title":         "Title",
	"field.author":        "Author",
	"field.summary":       "Summary",
	"field.isbn":          "ISBN",
	"field.genre":         "Genre",
	"field.name":          "Name",
	"field.book":          "Book",
	"field.imprint":       "Imprint",
	"field.status":        "Status",
	"field.due_back":      "Due back",
	"field.id":            "Id",

	// Statuses
	"status.Available":   "Available",
	"status.Maintenance": "Maintenance",
	"status.On Loan":     "On Loan",
	"status.Reserved":    "Reserved",

	// Actions and shared labels
	"action.submit":    "Submit",
	"action.update":    "Update",
	"action.delete":    "Delete",
	"action.previous":  "Previous",
	"action.next":      "Next",
	"list.empty":       "There are no records.",
	"list.page":        "Page %d of %d",
	"detail.books":     "Books",
	"detail.copies":    "Copies",
	"detail.genres":    "Genres",
	"detail.no_books":  "This record has no books.",
	"detail.no_copies": "There are no copies of this book in the library.",
	"delete.confirm":   "Do you really want to delete this record?",
	"delete.blocked":   "Delete the following records before deleting this one:",

	// Form violations
	"form.errors":              "Please correct the following:",
	"form.required":            "This field is required",
	"form.alphanumeric":        "Only letters and digits are allowed",
	"form.max_length":          "The value is too long",
	"form.min_length":          "The value is too short",
	"form.one_of":              "The value is not one of the allowed options",
	"form.integer":             "The identifier must be an integer",
	"form.int_list":            "Select at least one option",
	"form.date":                "Invalid date",
	"form.iso8601":             "Invalid date, use YYYY-MM-DD",
	"form.date_after":          "The date is too early",
	"form.first_name_valid":    "First name must be specified.",
	"form.first_name_char":     "First name has non-alphanumeric characters.",
	"form.family_name_valid":   "Family name must be specified.",
	"form.family_name_char":    "Family name has non-alphanumeric characters.",
	"form.date_of_birth_valid": "Invalid date of birth",
	"form.date_of_death_valid": "Invalid date of death",
	"form.date_of_death_after": "Date of death must be later than date of birth",
	"form.title_valid":         "Title must not be empty.",
	"form.author_valid":        "Author must not be empty.",
	"form.author_exists":       "The selected author does not exist.",
	"form.summary_valid":       "Summary must not be empty.",
	"form.isbn_valid":          "ISBN must not be empty.",
	"form.isbn_length":         "ISBN must be at most 255 characters.",
	"form.book_genre_valid":    "Select at least one genre.",
	"form.book_genre_exists":   "A selected genre does not exist.",
	"form.genre_valid":         "Genre name must contain at least 3 characters",
	"form.genre_duplicate":     "A genre with this name already exists.",
	"form.book_valid":          "Book must be specified",
	"form.book_exists":         "The selected book does not exist.",
	"form.imprint_valid":       "Imprint must be specified",
	"form.status_valid":        "Invalid status",
	"form.dueBack_valid":       "Invalid date",
	"form.due_back_required":   "A due back date is required for copies on loan",

	// Flash notices
	"flash.author_created":       "Author created.",
	"flash.author_updated":       "Author updated.",
	"flash.author_deleted":       "Author deleted.",
	"flash.book_created":         "Book created.",
	"flash.book_updated":         "Book updated.",
	"flash.book_deleted":         "Book deleted.",
	"flash.genre_created":        "Genre created.",
	"flash.genre_exists":         "That genre already exists.",
	"flash.genre_updated":        "Genre updated.",
	"flash.genre_deleted":        "Genre deleted.",
	"flash.bookinstance_created": "Book copy created.",
	"flash.bookinstance_updated": "Book copy updated.",
	"flash.bookinstance_deleted": "Book copy deleted.",

	// Errors
	"error.not_found":       "The requested record was not found.",
	"error.id_format_int":   "The identifier must be an integer.",
	"error.validation":      "The submitted data is invalid.",
	"error.conflict":        "The request conflicts with existing data.",
	"error.duplicate":       "A record with the same value already exists.",
	"error.has_dependents":  "The record is still referenced by other records.",
	"error.rate_limited":    "Too many requests. Please slow down.",
	"error.check_violation": "The values break a rule of the catalog.",
	"error.value_too_long":  "A value is longer than allowed.",
	"error.internal":        "An unexpected error occurred.",
}

var vietnamese = map[string]string{
	"nav.brand":               "Thư viện địa phương",
	"nav.home":                "Trang chủ",
	"nav.authors":             "Tất cả tác giả",
	"nav.books":               "Tất cả sách",
	"nav.genres":              "Tất cả thể loại",
	"nav.bookinstances":       "Tất cả bản sao",
	"nav.author_create":       "Thêm tác giả",
	"nav.book_create":         "Thêm sách",
	"nav.genre_create":        "Thêm thể loại",
	"nav.bookinstance_create": "Thêm bản sao",

	"page.home":                "Trang chủ thư viện",
	"page.author_list":         "Danh sách tác giả",
	"page.author_detail":       "Tác giả",
	"page.author_create":       "Thêm tác giả",
	"page.author_update":       "Cập nhật tác giả",
	"page.author_delete":       "Xóa tác giả",
	"page.book_list":           "Danh sách sách",
	"page.book_detail":         "Sách",
	"page.book_create":         "Thêm sách",
	"page.book_update":         "Cập nhật sách",
	"page.book_delete":         "Xóa sách",
	"page.genre_list":          "Danh sách thể loại",
	"page.genre_detail":        "Thể loại",
	"page.genre_create":        "Thêm thể loại",
	"page.genre_update":        "Cập nhật thể loại",
	"page.genre_delete":        "Xóa thể loại",
	"page.bookinstance_list":   "Danh sách bản sao",
	"page.bookinstance_detail": "Bản sao",
	"page.bookinstance_create": "Thêm bản sao",
	"page.bookinstance_update": "Cập nhật bản sao",
	"page.bookinstance_delete": "Xóa bản sao",
	"page.error":               "Đã xảy ra lỗi",

	"home.welcome":          "Chào mừng đến với thư viện địa phương.",
	"home.counts":           "Thư viện hiện có:",
	"home.books":            "Sách",
	"home.copies":           "Bản sao",
	"home.copies_available": "Bản sao sẵn có",
	"home.authors":          "Tác giả",
	"home.genres":           "Thể loại",
	"home.no_author":        "Không tìm thấy tác giả",
	"home.no_book":          "Không tìm thấy sách",
	"home.no_genre":         "Không tìm thấy thể loại",
	"home.no_bookinstance":  "Không tìm thấy bản sao",

	"field.first_name":    "Tên",
	"field.family_name":   "Họ",
	"field.date_of_birth": "Ngày sinh",
	"field.date_of_death": "Ngày mất",
	"field.title":         "Tiêu đề",
	"field.author":        "Tác giả",
	"field.summary":       "Tóm tắt",
	"field.isbn":          "ISBN",
	"field.genre":         "Thể loại",
	"field.name":          "Tên",
	"field.book":          "Sách",
	"field.imprint":       "Nhà xuất bản",
	"field.status":        "Trạng thái",
	"field.due_back":      "Hạn trả",

	"status.Available":   "Sẵn có",
	"status.Maintenance": "Bảo trì",
	"status.On Loan":     "Đang cho mượn",
	"status.Reserved":    "Đã đặt trước",

	"action.submit":  "Gửi",
	"action.update":  "Cập nhật",
	"action.delete":  "Xóa",
	"list.empty":     "Không có bản ghi nào.",
	"delete.confirm": "Bạn có chắc muốn xóa bản ghi này?",
	"delete.blocked": "Hãy xóa các bản ghi sau trước khi xóa bản ghi này:",

	"form.errors":              "Vui lòng sửa các lỗi sau:",
	"form.required":            "Trường này là bắt buộc",
	"form.first_name_valid":    "Tên không được để trống.",
	"form.first_name_char":     "Tên chứa ký tự không hợp lệ.",
	"form.family_name_valid":   "Họ không được để trống.",
	"form.family_name_char":    "Họ chứa ký tự không hợp lệ.",
	"form.date_of_birth_valid": "Ngày sinh không hợp lệ",
	"form.date_of_death_valid": "Ngày mất không hợp lệ",
	"form.date_of_death_after": "Ngày mất phải sau ngày sinh",
	"form.title_valid":         "Tiêu đề không được để trống.",
	"form.author_valid":        "Tác giả không được để trống.",
	"form.summary_valid":       "Tóm tắt không được để trống.",
	"form.isbn_valid":          "ISBN không được để trống.",
	"form.isbn_length":         "ISBN tối đa 255 ký tự.",
	"form.book_genre_valid":    "Hãy chọn ít nhất một thể loại.",
	"form.genre_valid":         "Tên thể loại phải có ít nhất 3 ký tự",
	"form.genre_duplicate":     "Thể loại này đã tồn tại.",
	"form.book_valid":          "Phải chọn sách",
	"form.imprint_valid":       "Phải nhập nhà xuất bản",
	"form.status_valid":        "Trạng thái không hợp lệ",
	"form.dueBack_valid":       "Ngày không hợp lệ",
	"form.due_back_required":   "Bản sao đang cho mượn phải có hạn trả",

	"flash.author_created":       "Đã thêm tác giả.",
	"flash.author_updated":       "Đã cập nhật tác giả.",
	"flash.author_deleted":       "Đã xóa tác giả.",
	"flash.book_created":         "Đã thêm sách.",
	"flash.book_updated":         "Đã cập nhật sách.",
	"flash.book_deleted":         "Đã xóa sách.",
	"flash.genre_created":        "Đã thêm thể loại.",
	"flash.genre_exists":         "Thể loại này đã tồn tại.",
	"flash.genre_updated":        "Đã cập nhật thể loại.",
	"flash.genre_deleted":        "Đã xóa thể loại.",
	"flash.bookinstance_created": "Đã thêm bản sao.",
	"flash.bookinstance_updated": "Đã cập nhật bản sao.",
	"flash.bookinstance_deleted": "Đã xóa bản sao.",

	"error.not_found":       "Không tìm thấy bản ghi.",
	"error.id_format_int":   "Mã định danh phải là số nguyên.",
	"error.check_violation": "Các giá trị vi phạm quy tắc của danh mục.",
	"error.value_too_long":  "Một giá trị dài hơn mức cho phép.",
	"error.internal":        "Đã xảy ra lỗi không mong muốn.",
}
