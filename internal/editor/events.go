package editor

import (
	"github.com/wanadev/matcap-editor/internal/engine/lighting"
)

// Event is a notification the editor publishes on its Events channel for
// an embedding UI to consume.
type Event interface {
	EventType() string
}

// ContentReadyEvent fires once the scene is built and the first snapshot
// has been scheduled.
type ContentReadyEvent struct{}

func (ContentReadyEvent) EventType() string { return "content-ready" }

// LightAddedEvent fires when a pointer press committed a new light.
type LightAddedEvent struct {
	Model *lighting.Model
}

func (LightAddedEvent) EventType() string { return "light-added" }

// PreviewUpdatedEvent carries the encoded PNG of the latest accepted
// preview snapshot.
type PreviewUpdatedEvent struct {
	PNG []byte
}

func (PreviewUpdatedEvent) EventType() string { return "preview-updated" }

// ExportWrittenEvent fires after an export snapshot has been written to
// disk.
type ExportWrittenEvent struct {
	Path string
}

func (ExportWrittenEvent) EventType() string { return "export-written" }

// Command is a request an embedding UI sends to the editor on its
// Commands channel. Commands are drained once per frame on the editor
// loop, so handlers never race the input handling.
type Command interface {
	CommandType() string
}

// AmbientChangedCommand updates the ambient light term.
type AmbientChangedCommand struct {
	Color     [3]float64
	Intensity float64
}

func (AmbientChangedCommand) CommandType() string { return "ambient-changed" }

// ConfigAppliedCommand re-reads the shared configuration into every
// engine component that caches parts of it, then refreshes the preview.
type ConfigAppliedCommand struct{}

func (ConfigAppliedCommand) CommandType() string { return "config-applied" }

// SnapshotRequestedCommand schedules a preview snapshot.
type SnapshotRequestedCommand struct{}

func (SnapshotRequestedCommand) CommandType() string { return "snapshot-requested" }

// ExportRequestedCommand schedules an export snapshot at full density.
type ExportRequestedCommand struct{}

func (ExportRequestedCommand) CommandType() string { return "export-requested" }

// DistanceChangedCommand re-derives one light's position from its stored
// surface hit with a new distance.
type DistanceChangedCommand struct {
	Model    *lighting.Model
	Distance float64
}

func (DistanceChangedCommand) CommandType() string { return "distance-changed" }

// DeleteLightCommand removes a light and everything attached to it.
type DeleteLightCommand struct {
	Model *lighting.Model
}

func (DeleteLightCommand) CommandType() string { return "delete-light" }

// DragStartedCommand puts one light into drag mode, superseding any
// previous drag.
type DragStartedCommand struct {
	Model *lighting.Model
}

func (DragStartedCommand) CommandType() string { return "drag-started" }

// DragStoppedCommand ends the active drag, if any.
type DragStoppedCommand struct{}

func (DragStoppedCommand) CommandType() string { return "drag-stopped" }
