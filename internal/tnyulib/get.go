package tnyulib

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/techatnyu/tnyu/pkg/tnyuapi"
)

type GetCommandArguments struct {
	Kind string
	Id   string
	// gjson paths into the attributes; all attributes are shown if empty
	Fields []string
	JSON   bool
}

func GetCommand(
	client *tnyuapi.Client, arguments GetCommandArguments, out io.Writer,
) error {
	kind, err := tnyuapi.ParseKind(arguments.Kind)
	if err != nil {
		return err
	}

	resource, err := client.Fetch(kind, arguments.Id)
	if err != nil {
		return err
	}

	if len(arguments.Fields) == 0 {
		if arguments.JSON {
			return printJSON(out, resource)
		}
		return printAttributes(out, resource)
	}

	cyan := color.New(color.FgCyan).SprintFunc()
	for _, field := range arguments.Fields {
		value, err := resource.Lookup(field)
		if err != nil {
			return err
		}
		if len(arguments.Fields) == 1 {
			fmt.Fprintln(out, formatValue(value))
		} else {
			fmt.Fprintf(out, "%s %s\n", cyan(field+":"), formatValue(value))
		}
	}
	return nil
}
