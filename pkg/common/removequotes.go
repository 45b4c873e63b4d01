package common

func RemoveSingleQuotesIfAny(str string) string {
	// Console arguments can come as "'Login form'"
	if len(str) >= 2 && str[0] == '\'' && str[len(str)-1] == '\'' {
		str = str[1 : len(str)-1]
	}
	return str
}

func RemoveDoubleQuotesIfAny(str string) string {
	// Console arguments can come as "\"Login form\""
	if len(str) >= 2 && str[0] == '"' && str[len(str)-1] == '"' {
		str = str[1 : len(str)-1]
	}
	return str
}
