package tnyulib

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/techatnyu/tnyu/pkg/tnyuapi"
)

type resourceJSON struct {
	Type       tnyuapi.Kind           `json:"type"`
	Id         string                 `json:"id"`
	Attributes map[string]interface{} `json:"attributes"`
}

func printJSON(out io.Writer, resource tnyuapi.Resource) error {
	body, err := json.Marshal(resourceJSON{
		Type:       resource.Kind(),
		Id:         resource.ID(),
		Attributes: resource.Attributes(),
	})
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, string(body))
	return err
}

// printResources writes one line per resource, either as a table of ids and
// labels or as JSON lines
func printResources(
	out io.Writer, resources []tnyuapi.Resource, asJSON bool,
) error {
	if asJSON {
		for _, resource := range resources {
			err := printJSON(out, resource)
			if err != nil {
				return err
			}
		}
		return nil
	}

	// Columns are padded before colouring; escape codes would count as width
	var table bytes.Buffer
	writer := tabwriter.NewWriter(&table, 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "ID\tNAME")
	for _, resource := range resources {
		fmt.Fprintf(writer, "%s\t%s\n", resource.ID(), resource)
	}
	if err := writer.Flush(); err != nil {
		return err
	}

	header, rows, _ := strings.Cut(table.String(), "\n")
	bold := color.New(color.Bold).SprintFunc()
	_, err := fmt.Fprintf(out, "%s\n%s", bold(header), rows)
	return err
}

// printAttributes writes every attribute of 'resource', sorted by name
func printAttributes(out io.Writer, resource tnyuapi.Resource) error {
	cyan := color.New(color.FgCyan).SprintFunc()
	attributes := resource.Attributes()
	names := make([]string, 0, len(attributes))
	for name := range attributes {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Fprintf(out, "%s %s\n", cyan("id:"), resource.ID())
	for _, name := range names {
		fmt.Fprintf(out, "%s %s\n",
			cyan(name+":"), formatValue(attributes[name]))
	}
	return nil
}

func formatValue(value interface{}) string {
	switch typed := value.(type) {
	case nil:
		return "-"
	case string:
		return typed
	case json.Number:
		return typed.String()
	case bool:
		return fmt.Sprint(typed)
	default:
		body, err := json.Marshal(typed)
		if err != nil {
			return fmt.Sprint(typed)
		}
		return string(body)
	}
}
