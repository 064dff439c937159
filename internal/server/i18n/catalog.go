// Package i18n holds the user-facing strings of the HTTP API and the
// dashboard activity feed, one Catalog per supported locale.
package i18n

import "strings"

// Catalog is a set of display strings. Fields ending in "Format" are
// fmt templates.
type Catalog struct {
	Locale string

	HealthOK string

	LoginMissingCredentials string
	AuthRequired            string
	AccountNotFound         string
	WrongPassword           string
	LoginOK                 string
	AuthFailed              string

	DashboardFailed string
	ListUsersFailed string

	MissingUserFields  string
	PasswordTooShort   string
	PasswordTooLong    string
	InvalidRole        string
	InvalidStoreLimit  string
	EmailTaken         string
	CreateUserFailed   string
	UserCreated        string
	InvalidRequestBody string

	RouteNotFound string
	InternalError string

	// Activity feed.
	JustNow            string
	MinutesAgoFormat   string // %d
	HoursAgoFormat     string // %d
	Yesterday          string
	DayBeforeYesterday string
	DaysAgoFormat      string // %d
	StoreCreatedFormat string // owner, platform, store name
	UnknownOwner       string
}

var zhCN = Catalog{
	Locale: "zh-CN",

	HealthOK: "荣诚商家移动管理端 API 运行正常",

	LoginMissingCredentials: "请输入邮箱和密码",
	AuthRequired:            "需要认证信息",
	AccountNotFound:         "管理员账户不存在或已被禁用",
	WrongPassword:           "密码错误",
	LoginOK:                 "登录成功",
	AuthFailed:              "认证失败",

	DashboardFailed: "获取仪表盘数据失败",
	ListUsersFailed: "获取用户列表失败",

	MissingUserFields:  "请填写所有必填字段",
	PasswordTooShort:   "密码长度至少6位",
	PasswordTooLong:    "密码长度不能超过72字节",
	InvalidRole:        "无效的角色",
	InvalidStoreLimit:  "门店数量上限不能为负数",
	EmailTaken:         "邮箱已被使用",
	CreateUserFailed:   "创建用户失败",
	UserCreated:        "用户创建成功",
	InvalidRequestBody: "请求体格式错误",

	RouteNotFound: "接口不存在",
	InternalError: "服务器内部错误",

	JustNow:            "刚刚",
	MinutesAgoFormat:   "%d分钟前",
	HoursAgoFormat:     "%d小时前",
	Yesterday:          "昨天",
	DayBeforeYesterday: "前天",
	DaysAgoFormat:      "%d天前",
	StoreCreatedFormat: "%s创建了%s门店「%s」",
	UnknownOwner:       "用户",
}

var en = Catalog{
	Locale: "en",

	HealthOK: "Store admin API is running",

	LoginMissingCredentials: "Please enter email and password",
	AuthRequired:            "Authentication required",
	AccountNotFound:         "Admin account does not exist or is disabled",
	WrongPassword:           "Wrong password",
	LoginOK:                 "Login successful",
	AuthFailed:              "Authentication failed",

	DashboardFailed: "Failed to load dashboard data",
	ListUsersFailed: "Failed to list users",

	MissingUserFields:  "Please fill in all required fields",
	PasswordTooShort:   "Password must be at least 6 characters",
	PasswordTooLong:    "Password must be at most 72 bytes",
	InvalidRole:        "Invalid role",
	InvalidStoreLimit:  "Store limit must not be negative",
	EmailTaken:         "Email is already in use",
	CreateUserFailed:   "Failed to create user",
	UserCreated:        "User created",
	InvalidRequestBody: "Malformed request body",

	RouteNotFound: "Endpoint not found",
	InternalError: "Internal server error",

	JustNow:            "just now",
	MinutesAgoFormat:   "%d minutes ago",
	HoursAgoFormat:     "%d hours ago",
	Yesterday:          "yesterday",
	DayBeforeYesterday: "the day before yesterday",
	DaysAgoFormat:      "%d days ago",
	StoreCreatedFormat: "%s created a %s store named '%s'",
	UnknownOwner:       "user",
}

// Lookup returns the catalog for locale. Anything starting with "en" gets
// English; everything else gets the zh-CN default.
func Lookup(locale string) *Catalog {
	if strings.HasPrefix(strings.ToLower(locale), "en") {
		c := en
		return &c
	}
	c := zhCN
	return &c
}
