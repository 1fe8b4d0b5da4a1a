// Package app composes web modules into the root HTTP handler.
package app

import (
	"fmt"
	"net/http"
	"strings"

	module "github.com/vinylcourses/coursehub/internal/services/web/module"
	"github.com/vinylcourses/coursehub/internal/services/web/platform/requestmeta"
	"github.com/vinylcourses/coursehub/internal/services/web/platform/sessioncookie"
)

// ComposeInput carries the modules and shared composition contracts.
type ComposeInput struct {
	Modules             []module.Module
	RequestSchemePolicy requestmeta.SchemePolicy
}

// Compose mounts every module on root and returns root. Each module also
// answers on its slashless prefix so /profile and /profile/ reach the same
// handler.
func Compose(root *http.ServeMux, input ComposeInput) (http.Handler, error) {
	if root == nil {
		root = http.NewServeMux()
	}
	seen := make(map[string]string)
	guard := requireCookieSessionSameOrigin(input.RequestSchemePolicy)

	for _, feature := range input.Modules {
		if feature == nil {
			return nil, fmt.Errorf("module is nil")
		}
		mount, prefix, err := resolveMount(feature)
		if err != nil {
			return nil, err
		}
		handler := guard(mount.Handler)
		if err := mountModule(root, feature, handler, prefix, seen); err != nil {
			return nil, err
		}
		if alias := slashlessPrefixAlias(prefix); alias != "" {
			if err := mountModule(root, feature, handler, alias, seen); err != nil {
				return nil, err
			}
		}
	}
	return root, nil
}

func mountModule(root *http.ServeMux, feature module.Module, handler http.Handler, prefix string, seen map[string]string) error {
	if previous, ok := seen[prefix]; ok {
		return fmt.Errorf("module %q duplicates prefix %q owned by module %q", feature.ID(), prefix, previous)
	}
	seen[prefix] = feature.ID()
	root.Handle(prefix, handler)
	return nil
}

func resolveMount(feature module.Module) (module.Mount, string, error) {
	mount, err := feature.Mount()
	if err != nil {
		return module.Mount{}, "", fmt.Errorf("mount module %q: %w", feature.ID(), err)
	}
	if err := validatePrefix(mount.Prefix); err != nil {
		return module.Mount{}, "", fmt.Errorf("mount module %q has invalid prefix %q: %w", feature.ID(), mount.Prefix, err)
	}
	if mount.Handler == nil {
		return module.Mount{}, "", fmt.Errorf("mount module %q: handler is required", feature.ID())
	}
	return mount, mount.Prefix, nil
}

func validatePrefix(prefix string) error {
	if prefix == "" {
		return fmt.Errorf("prefix is required")
	}
	if strings.TrimSpace(prefix) != prefix {
		return fmt.Errorf("prefix must not include surrounding whitespace")
	}
	if !strings.HasPrefix(prefix, "/") {
		return fmt.Errorf("prefix must begin with /")
	}
	if !strings.HasSuffix(prefix, "/") {
		return fmt.Errorf("prefix must end with /")
	}
	if prefix == "/" {
		return fmt.Errorf("prefix must not be the root")
	}
	return nil
}

func slashlessPrefixAlias(prefix string) string {
	alias := strings.TrimSuffix(prefix, "/")
	if alias == "" || alias == prefix {
		return ""
	}
	return alias
}

// requireCookieSessionSameOrigin rejects cross-origin mutations that carry the
// session cookie.
func requireCookieSessionSameOrigin(policy requestmeta.SchemePolicy) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if next == nil {
			next = http.NotFoundHandler()
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !isMutationMethod(r) || !hasSessionCookie(r) {
				next.ServeHTTP(w, r)
				return
			}
			if !requestmeta.HasSameOriginProof(r, policy) {
				http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func isMutationMethod(r *http.Request) bool {
	if r == nil {
		return false
	}
	switch r.Method {
	case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
		return true
	default:
		return false
	}
}

func hasSessionCookie(r *http.Request) bool {
	_, ok := sessioncookie.Read(r)
	return ok
}
