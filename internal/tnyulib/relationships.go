package tnyulib

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/techatnyu/tnyu/pkg/tnyuapi"
)

// EmployerCommand prints the current employer of a person
func EmployerCommand(
	client *tnyuapi.Client, personId string, asJSON bool, out io.Writer,
) error {
	person, err := client.Person(personId)
	if err != nil {
		return err
	}
	organization, err := person.Organization()
	if err != nil {
		return err
	}
	if organization == nil {
		yellow := color.New(color.FgYellow).SprintFunc()
		fmt.Fprintln(out, yellow(fmt.Sprintf("%s has no organization", person)))
		return nil
	}
	return printResources(out, []tnyuapi.Resource{organization}, asJSON)
}

// LiaisonsCommand prints the liaisons of an organization that still exist
func LiaisonsCommand(
	client *tnyuapi.Client, organizationId string, asJSON bool, out io.Writer,
) error {
	organization, err := client.Organization(organizationId)
	if err != nil {
		return err
	}
	liaisons, err := organization.Liaisons()
	if err != nil {
		return err
	}
	resources := make([]tnyuapi.Resource, 0, len(liaisons))
	for _, person := range liaisons {
		resources = append(resources, person)
	}
	return printResources(out, resources, asJSON)
}

// VenueCommand prints the venue of an event
func VenueCommand(
	client *tnyuapi.Client, eventId string, asJSON bool, out io.Writer,
) error {
	event, err := client.Event(eventId)
	if err != nil {
		return err
	}
	venue, err := event.Venue()
	if err != nil {
		return err
	}
	return printResources(out, []tnyuapi.Resource{venue}, asJSON)
}
