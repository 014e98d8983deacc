package core

import (
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"slimdx-generator/internal/types"
)

var parameterFlagTokens = map[types.ParameterFlagToken]types.ParameterFlags{
	types.ParameterFlagTokenOut: types.ParameterFlagOutput,
}

// parseParameterFlags folds flag tokens into a flag set.  Unknown tokens
// are skipped unless strict is set; where names the parameter for errors.
func parseParameterFlags(tokens []string, strict bool, where string) (types.ParameterFlags, error) {
	flags := types.ParameterFlagNone
	for _, token := range tokens {
		flag, ok := parameterFlagTokens[types.ParameterFlagToken(strings.TrimSpace(token))]
		if !ok {
			if strict {
				return types.ParameterFlagNone, errbuilder.New().
					WithCode(errbuilder.CodeInvalidArgument).
					WithMsg("unknown parameter flag '" + token + "' in " + where)
			}
			continue
		}
		flags |= flag
	}
	return flags, nil
}
