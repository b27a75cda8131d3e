// Package audit records one event per dispatched command in an XML log.
package audit

import (
	"encoding/xml"
	"os"
	"strings"
	"time"

	"github.com/spf13/afero"
)

// timeLayout is UTC ISO-8601 with microseconds and a trailing Z.
const timeLayout = "2006-01-02T15:04:05.000000Z"

// Event is a single command invocation. Args are space-joined.
type Event struct {
	XMLName xml.Name `xml:"event"`
	Time    string   `xml:"time,attr"`
	User    string   `xml:"user,attr"`
	Command string   `xml:"command"`
	Args    string   `xml:"args"`
}

// Recorder stores events in an external sink.
type Recorder interface {
	Record(user, command string, args []string) error
}

// NopRecorder drops every event.
type NopRecorder struct{}

func (NopRecorder) Record(user, command string, args []string) error {
	return nil
}

// eventLog is the document shape of the XML log file.
type eventLog struct {
	XMLName xml.Name `xml:"log"`
	Events  []Event  `xml:"event"`
}

// XMLRecorder appends events to an XML file, rewriting the document on
// every record so the file is always well formed.
type XMLRecorder struct {
	fs   afero.Fs
	path string

	// Now is the clock used to stamp events, overridable in tests.
	Now func() time.Time
}

func NewXMLRecorder(fsys afero.Fs, path string) *XMLRecorder {
	return &XMLRecorder{fs: fsys, path: path, Now: time.Now}
}

// Ensure creates the log file with an empty root element when absent.
func (r *XMLRecorder) Ensure() error {
	if _, err := r.fs.Stat(r.path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return err
	}
	return r.write(&eventLog{})
}

// Record appends one event with the recorder's current timestamp.
func (r *XMLRecorder) Record(user, command string, args []string) error {
	doc, err := r.read()
	if err != nil {
		return err
	}
	doc.Events = append(doc.Events, Event{
		Time:    r.Now().UTC().Format(timeLayout),
		User:    user,
		Command: command,
		Args:    strings.Join(args, " "),
	})
	return r.write(doc)
}

func (r *XMLRecorder) read() (*eventLog, error) {
	data, err := afero.ReadFile(r.fs, r.path)
	if os.IsNotExist(err) {
		return &eventLog{}, nil
	} else if err != nil {
		return nil, err
	}
	var doc eventLog
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

func (r *XMLRecorder) write(doc *eventLog) error {
	data, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	return afero.WriteFile(r.fs, r.path, append([]byte(xml.Header), data...), 0644)
}
