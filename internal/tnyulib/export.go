package tnyulib

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/fatih/color"
	"github.com/gosimple/slug"
	"github.com/techatnyu/tnyu/pkg/tnyuapi"
	"github.com/techatnyu/tnyu/pkg/worker_pool"
)

const productId = "-//Tech@NYU//tnyu//EN"

type ExportCommandArguments struct {
	// "-" writes to 'out'; empty means "<slug of the calendar name>.ics"
	Output     string
	Name       string
	WithVenues bool
	Workers    int
	Silent     bool
}

/*
ExportCommand
Writes all events as an iCalendar file. With 'WithVenues', the venue of every
event is fetched (in parallel, 'Workers' at a time) and used as the event's
location.
*/
func ExportCommand(
	client *tnyuapi.Client, arguments ExportCommandArguments, out io.Writer,
) error {
	events, err := client.Events("startDateTime")
	if err != nil {
		var e *tnyuapi.InvalidAttributeError
		if !errors.As(err, &e) {
			return err
		}
		// Events without dates cannot be sorted; keep the server's order
		events, err = client.Events("")
		if err != nil {
			return err
		}
	}

	var locations []string
	if arguments.WithVenues {
		locations = fetchLocations(client, events, arguments)
	}

	name := arguments.Name
	if name == "" {
		name = "Tech@NYU events"
	}
	calendar, skipped := eventsToCalendar(name, events, locations)

	outputPath := arguments.Output
	if outputPath == "" {
		outputPath = slug.Make(name) + ".ics"
	}
	if outputPath == "-" {
		_, err = io.WriteString(out, calendar.Serialize())
		return err
	}
	err = os.WriteFile(outputPath, []byte(calendar.Serialize()), 0644)
	if err != nil {
		return err
	}

	if !arguments.Silent {
		green := color.New(color.FgGreen).SprintFunc()
		fmt.Fprintln(out, green(fmt.Sprintf(
			"Exported %d events to '%s'", len(events)-skipped, outputPath,
		)))
		if skipped > 0 {
			yellow := color.New(color.FgYellow).SprintFunc()
			fmt.Fprintln(out, yellow(fmt.Sprintf(
				"Skipped %d events without a valid startDateTime", skipped,
			)))
		}
	}
	return nil
}

type venueTask struct {
	client    *tnyuapi.Client
	event     *tnyuapi.Event
	locations []string
	i         int
}

func (task venueTask) Run(send func(string), abort func()) {
	send(fmt.Sprintf("%s: fetching venue", task.event))

	venue, err := task.event.Venue()
	var e *tnyuapi.UnknownAttributeError
	if errors.As(err, &e) {
		// Listings may leave relationships out
		var event *tnyuapi.Event
		event, err = task.client.Event(task.event.ID())
		if err == nil {
			venue, err = event.Venue()
		}
	}
	if err != nil {
		send(fmt.Sprintf("%s: %s", task.event, err))
		return
	}

	location := venue.String()
	if address, err := venue.StringAttribute("address"); err == nil &&
		address != "" {
		location = fmt.Sprintf("%s, %s", location, address)
	}
	task.locations[task.i] = location
	send(fmt.Sprintf("%s: %s", task.event, location))
}

func fetchLocations(
	client *tnyuapi.Client,
	events []*tnyuapi.Event,
	arguments ExportCommandArguments,
) []string {
	locations := make([]string, len(events))
	pool := worker_pool.New(arguments.Workers, len(events))
	if arguments.Silent {
		pool.SetOutput(io.Discard, false)
	}
	for i, event := range events {
		pool.Add(venueTask{
			client:    client,
			event:     event,
			locations: locations,
			i:         i,
		})
	}
	pool.Start()
	<-pool.Wait()
	return locations
}

func parseTime(event *tnyuapi.Event, field string) (time.Time, error) {
	value, err := event.StringAttribute(field)
	if err != nil {
		return time.Time{}, err
	}
	return time.Parse(time.RFC3339, value)
}

// eventsToCalendar returns the calendar and the number of events left out
// because their start time is missing or unparsable
func eventsToCalendar(
	name string, events []*tnyuapi.Event, locations []string,
) (*ics.Calendar, int) {
	calendar := ics.NewCalendar()
	calendar.SetMethod(ics.MethodPublish)
	calendar.SetProductId(productId)
	calendar.SetXWRCalName(name)

	skipped := 0
	now := time.Now().UTC()
	for i, event := range events {
		start, err := parseTime(event, "startDateTime")
		if err != nil {
			skipped++
			continue
		}

		title, _ := event.Label()
		uid := fmt.Sprintf("%s-%s@tnyu.org", slug.Make(title), event.ID())
		component := calendar.AddEvent(strings.TrimPrefix(uid, "-"))
		component.SetDtStampTime(now)
		component.SetStartAt(start)
		if end, err := parseTime(event, "endDateTime"); err == nil {
			component.SetEndAt(end)
		}
		if title != "" {
			component.SetSummary(title)
		}
		if description, err := event.StringAttribute("description"); err == nil &&
			description != "" {
			component.SetDescription(description)
		}
		if rsvpUrl, err := event.StringAttribute("rsvpUrl"); err == nil &&
			rsvpUrl != "" {
			component.SetURL(rsvpUrl)
		}
		if locations != nil && locations[i] != "" {
			component.SetLocation(locations[i])
		}
	}
	return calendar, skipped
}
