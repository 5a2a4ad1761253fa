package tnyulib

import (
	"io"

	"github.com/techatnyu/tnyu/pkg/tnyuapi"
)

type ListCommandArguments struct {
	Kind   string
	SortBy string
	JSON   bool
}

func ListCommand(
	client *tnyuapi.Client, arguments ListCommandArguments, out io.Writer,
) error {
	kind, err := tnyuapi.ParseKind(arguments.Kind)
	if err != nil {
		return err
	}

	resources, err := client.List(kind, arguments.SortBy)
	if err != nil {
		return err
	}
	return printResources(out, resources, arguments.JSON)
}
