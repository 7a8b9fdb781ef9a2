package strings

import "github.com/iancoleman/strcase"

func ToKebabCase(s string) string {
	return strcase.ToKebab(s)
}

func ToScreamingSnakeCase(s string) string {
	return strcase.ToScreamingSnake(s)
}
