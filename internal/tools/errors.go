package tools

import (
	"github.com/mugiliam/common/apperrors"
)

var (
	ErrToolError       apperrors.Error = apperrors.New("error in tool dispatch")
	ErrUnknownTool     apperrors.Error = ErrToolError.New("unknown tool")
	ErrUnknownToolSpec apperrors.Error = ErrToolError.New("unknown tool spec")
)
