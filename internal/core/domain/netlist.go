package domain

// ComponentType classifies an electronic component.
type ComponentType string

// Standard component categories used in PCB netlists.
const (
	ComponentIC         ComponentType = "IC"
	ComponentResistor   ComponentType = "RESISTOR"
	ComponentCapacitor  ComponentType = "CAPACITOR"
	ComponentInductor   ComponentType = "INDUCTOR"
	ComponentDiode      ComponentType = "DIODE"
	ComponentTransistor ComponentType = "TRANSISTOR"
	ComponentConnector  ComponentType = "CONNECTOR"
	ComponentOther      ComponentType = "OTHER"
)

// PinDirection describes the electrical function of a pin.
type PinDirection string

// Pin electrical directions.
const (
	PinInput         PinDirection = "input"
	PinOutput        PinDirection = "output"
	PinBidirectional PinDirection = "bidirectional"
	PinPower         PinDirection = "power"
	PinGround        PinDirection = "ground"
	PinPassive       PinDirection = "passive"
)

// Pin is a physical connection point on a component.
type Pin struct {
	// Number is the pin identifier. Not necessarily numeric ("A1", "VCC").
	Number string `json:"number"`

	// Name is the optional pin name ("VCC", "CLK").
	Name string `json:"name,omitempty"`

	// Type is an optional pin type classification ("power", "input").
	Type string `json:"type,omitempty"`

	// Direction is the optional electrical direction of the pin.
	Direction PinDirection `json:"direction,omitempty"`
}

// Component is a discrete electronic part in the netlist.
// A Component is immutable once parsed from a text snapshot; it is
// discarded and rebuilt on every successful re-parse.
type Component struct {
	// Name identifies the component ("U1", "R5"). Names are expected to
	// be unique but duplicates are preserved verbatim: uniqueness is a
	// rule-engine diagnostic, not a model invariant.
	Name string `json:"name"`

	// Type is the component kind.
	Type ComponentType `json:"type"`

	// Pins are the connection points on this component.
	Pins []Pin `json:"pins"`

	// Value is the optional component value ("10k", "100nF").
	Value string `json:"value,omitempty"`

	// Package is the optional physical package ("SOIC-8", "0603").
	Package string `json:"package,omitempty"`

	// Manufacturer is the optional manufacturer name.
	Manufacturer string `json:"manufacturer,omitempty"`

	// PartNumber is the optional manufacturer part number.
	PartNumber string `json:"part_number,omitempty"`
}

// NetConnection links a net to a component pin by name.
// Both references are soft: the model does not resolve or validate
// them. Unresolved references are reported by the remote rule engine.
type NetConnection struct {
	// Component is the name of the referenced component.
	Component string `json:"component"`

	// Pin is the pin identifier on the referenced component.
	Pin string `json:"pin"`
}

// Net is a named electrical connection joining component pins.
type Net struct {
	// Name identifies the net ("VCC", "GND", "CLK").
	Name string `json:"name"`

	// Connections are the component pins joined by this net.
	Connections []NetConnection `json:"connections"`

	// NetType is the optional net role ("power", "ground", "signal", "clock").
	NetType string `json:"net_type,omitempty"`
}

// Netlist is the structured description of an electronic circuit:
// the components and the nets connecting their pins.
type Netlist struct {
	// Components are the electronic parts in the circuit.
	Components []Component `json:"components"`

	// Nets are the electrical connections between component pins.
	Nets []Net `json:"nets"`

	// Metadata holds free-form document metadata.
	Metadata map[string]any `json:"metadata,omitempty"`
}

// Component returns the first component with the given name, or nil.
// Duplicate names are tolerated; lookups resolve to the first occurrence.
func (n *Netlist) Component(name string) *Component {
	for i := range n.Components {
		if n.Components[i].Name == name {
			return &n.Components[i]
		}
	}
	return nil
}

// Net returns the first net with the given name, or nil.
func (n *Netlist) Net(name string) *Net {
	for i := range n.Nets {
		if n.Nets[i].Name == name {
			return &n.Nets[i]
		}
	}
	return nil
}
