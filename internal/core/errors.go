package core

import (
	"fmt"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
)

func errDependencyNotFound(path string) error {
	return errbuilder.New().
		WithCode(errbuilder.CodeNotFound).
		WithMsg("dependency not found: " + path)
}

func errCyclicDependency(chain []string) error {
	return errbuilder.New().
		WithCode(errbuilder.CodeFailedPrecondition).
		WithMsg("cyclic dependency: " + strings.Join(chain, " -> "))
}

func errUnresolvedReference(key string, where string) error {
	return errbuilder.New().
		WithCode(errbuilder.CodeNotFound).
		WithMsg(fmt.Sprintf("unresolved reference '%s' in %s", key, where))
}

func errUnresolvableExternalType(target string, key string) error {
	return errbuilder.New().
		WithCode(errbuilder.CodeNotFound).
		WithMsg(fmt.Sprintf("unresolvable external type '%s' for reference '%s'", target, key))
}

func errMalformedGUID(guid string, key string, cause error) error {
	return errbuilder.New().
		WithCode(errbuilder.CodeInvalidArgument).
		WithMsg(fmt.Sprintf("malformed guid '%s' for interface '%s'", guid, key)).
		WithCause(cause)
}

func errCyclicInheritance(chain []string) error {
	return errbuilder.New().
		WithCode(errbuilder.CodeFailedPrecondition).
		WithMsg("cyclic inheritance: " + strings.Join(chain, " -> "))
}

func errUnrootedInheritance(key string, reason string) error {
	return errbuilder.New().
		WithCode(errbuilder.CodeFailedPrecondition).
		WithMsg(fmt.Sprintf("inheritance chain does not terminate at base type: interface '%s' %s", key, reason))
}

func errMissingKey(section string, position int) error {
	return errbuilder.New().
		WithCode(errbuilder.CodeInvalidArgument).
		WithMsg(fmt.Sprintf("%s entry %d is missing a key", section, position))
}

func errVariantMismatch(key string, want string) error {
	return errbuilder.New().
		WithCode(errbuilder.CodeInvalidArgument).
		WithMsg(fmt.Sprintf("key '%s' is not a %s", key, want))
}

func errMethodIndexOutOfRange(index int, count int, where string) error {
	return errbuilder.New().
		WithCode(errbuilder.CodeInvalidArgument).
		WithMsg(fmt.Sprintf("index %d of %s is outside 0..%d", index, where, count-1))
}

func errDuplicateMethodIndex(index int, first string, second string, iface string) error {
	return errbuilder.New().
		WithCode(errbuilder.CodeInvalidArgument).
		WithMsg(fmt.Sprintf("duplicate method index %d in interface '%s': '%s' and '%s'", index, iface, first, second))
}
