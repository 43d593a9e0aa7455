package i18n

// FormatEnUS returns the US English layouts.
func FormatEnUS() *LocaleFormat {
	return NewLocaleFormat()
}

// FormatEnGB returns the British English layouts.
func FormatEnGB() *LocaleFormat {
	return NewLocaleFormat(
		WithDateFormat("2 Jan 2006"),
		WithMonthDayFormat("2 Jan", "2 Jan 2006"),
		WithDateTimeFormat("02/01/2006 15:04:05"),
		WithMeridiem("am", "pm", false),
	)
}

// FormatZhCN returns the Simplified Chinese layouts.
func FormatZhCN() *LocaleFormat {
	return NewLocaleFormat(
		WithDateFormat("2006年1月2日"),
		WithNumericDateFormat("2006/01/02"),
		WithMonthDayFormat("1月2日", "2006年1月2日"),
		WithDateTimeFormat("2006/01/02 15:04:05"),
		WithMeridiem("上午", "下午", true),
	)
}

// FormatJaJP returns the Japanese layouts.
func FormatJaJP() *LocaleFormat {
	return NewLocaleFormat(
		WithDateFormat("2006年1月2日"),
		WithNumericDateFormat("2006/01/02"),
		WithMonthDayFormat("1月2日", "2006年1月2日"),
		WithDateTimeFormat("2006/01/02 15:04:05"),
		WithMeridiem("午前", "午後", true),
	)
}

// PredefinedFormats maps language tags to the layouts shipped with the package.
func PredefinedFormats() map[string]*LocaleFormat {
	return map[string]*LocaleFormat{
		"en":    FormatEnUS(),
		"en-US": FormatEnUS(),
		"en-GB": FormatEnGB(),
		"zh-CN": FormatZhCN(),
		"ja":    FormatJaJP(),
	}
}
