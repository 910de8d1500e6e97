package req

import (
	"fmt"
	"net/http"

	"git.appkode.ru/pub/go/failure"

	"numclass/pkg/errcodes"
)

// Query returns the raw value of a required query parameter. An empty value
// counts as present.
func Query(r *http.Request, name string) (string, error) {
	values := r.URL.Query()

	if !values.Has(name) {
		return "", failure.NewInvalidArgumentError(
			fmt.Sprintf("query parameter %q is missing", name),
			failure.WithCode(errcodes.MissingParameter),
			failure.WithDescription(fmt.Sprintf("Missing required parameter '%s'", name)),
		)
	}

	return values.Get(name), nil
}
