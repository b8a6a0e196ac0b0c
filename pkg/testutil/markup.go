package testutil

import (
	"fmt"

	"github.com/arthur-debert/minimessage/pkg/markup"
)

// CollectEvents tokenizes input in the given chunks and returns every
// event, flushed.
func CollectEvents(chunks ...string) []markup.Event {
	var events []markup.Event
	tokenizer := markup.NewTokenizer(func(e markup.Event) {
		events = append(events, e)
	})
	for _, chunk := range chunks {
		tokenizer.Parse(chunk)
	}
	tokenizer.Flush()
	return events
}

// EventShapes renders events as compact strings such as "text:Hi",
// "<b>", "<click:open_url:x/>" and "</b>", without locations.
func EventShapes(events []markup.Event) []string {
	out := make([]string, 0, len(events))
	for _, event := range events {
		switch e := event.(type) {
		case markup.TextEvent:
			out = append(out, "text:"+e.Content)
		case markup.StartTagEvent:
			body := e.Name
			if raw := e.Args.Raw(); raw != "" {
				body += ":" + raw
			}
			if e.SelfClosing {
				body += "/"
			}
			out = append(out, "<"+body+">")
		case markup.EndTagEvent:
			out = append(out, "</"+e.Name+">")
		default:
			out = append(out, fmt.Sprintf("%v", e))
		}
	}
	return out
}
