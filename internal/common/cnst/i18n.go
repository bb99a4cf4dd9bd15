package cnst

const (
	LangEN      = "en"
	LangZH      = "zh"
	LangDefault = LangEN
)

// XLang is both the request header and the gin context key carrying the language
const XLang = "X-Lang"
