package yewgen

import "strings"

// listenerAttributes is the fixed set of attribute names compiled into
// listener registrations. Any other name, including other "on"-prefixed
// names, is a plain attribute.
var listenerAttributes = map[string]bool{
	"onabort":                   true,
	"onanimationcancel":         true,
	"onanimationend":            true,
	"onanimationiteration":      true,
	"onanimationstart":          true,
	"onauxclick":                true,
	"onblur":                    true,
	"oncancel":                  true,
	"oncanplay":                 true,
	"oncanplaythrough":          true,
	"onchange":                  true,
	"onclick":                   true,
	"onclose":                   true,
	"oncontextmenu":             true,
	"oncopy":                    true,
	"oncuechange":               true,
	"oncut":                     true,
	"ondblclick":                true,
	"ondrag":                    true,
	"ondragend":                 true,
	"ondragenter":               true,
	"ondragexit":                true,
	"ondragleave":               true,
	"ondragover":                true,
	"ondragstart":               true,
	"ondrop":                    true,
	"ondurationchange":          true,
	"onemptied":                 true,
	"onended":                   true,
	"onerror":                   true,
	"onfocus":                   true,
	"onfocusin":                 true,
	"onfocusout":                true,
	"onformdata":                true,
	"ongotpointercapture":       true,
	"oninput":                   true,
	"oninvalid":                 true,
	"onkeydown":                 true,
	"onkeypress":                true,
	"onkeyup":                   true,
	"onload":                    true,
	"onloadeddata":              true,
	"onloadedmetadata":          true,
	"onloadend":                 true,
	"onloadstart":               true,
	"onlostpointercapture":      true,
	"onmousedown":               true,
	"onmouseenter":              true,
	"onmouseleave":              true,
	"onmousemove":               true,
	"onmouseout":                true,
	"onmouseover":               true,
	"onmouseup":                 true,
	"onpaste":                   true,
	"onpause":                   true,
	"onplay":                    true,
	"onplaying":                 true,
	"onpointercancel":           true,
	"onpointerdown":             true,
	"onpointerenter":            true,
	"onpointerleave":            true,
	"onpointerlockchange":       true,
	"onpointerlockerror":        true,
	"onpointermove":             true,
	"onpointerout":              true,
	"onpointerover":             true,
	"onpointerup":               true,
	"onprogress":                true,
	"onratechange":              true,
	"onreset":                   true,
	"onresize":                  true,
	"onscroll":                  true,
	"onsecuritypolicyviolation": true,
	"onseeked":                  true,
	"onseeking":                 true,
	"onselect":                  true,
	"onselectionchange":         true,
	"onselectstart":             true,
	"onshow":                    true,
	"onslotchange":              true,
	"onstalled":                 true,
	"onsubmit":                  true,
	"onsuspend":                 true,
	"ontimeupdate":              true,
	"ontoggle":                  true,
	"ontouchcancel":             true,
	"ontouchend":                true,
	"ontouchmove":               true,
	"ontouchstart":              true,
	"ontransitioncancel":        true,
	"ontransitionend":           true,
	"ontransitionrun":           true,
	"ontransitionstart":         true,
	"onvolumechange":            true,
	"onwaiting":                 true,
	"onwheel":                   true,
}

// booleanAttributes are HTML attributes whose presence is their value.
var booleanAttributes = map[string]bool{
	"allowfullscreen": true,
	"async":           true,
	"autofocus":       true,
	"autoplay":        true,
	"checked":         true,
	"controls":        true,
	"default":         true,
	"defer":           true,
	"disabled":        true,
	"formnovalidate":  true,
	"hidden":          true,
	"inert":           true,
	"ismap":           true,
	"loop":            true,
	"multiple":        true,
	"muted":           true,
	"nomodule":        true,
	"novalidate":      true,
	"open":            true,
	"readonly":        true,
	"required":        true,
	"reversed":        true,
	"selected":        true,
}

// IsListener reports whether name is compiled into a listener registration.
func IsListener(name string) bool {
	return listenerAttributes[name]
}

// EventName returns the DOM event name for a listener attribute ("onclick" -> "click").
func EventName(attr string) string {
	return strings.TrimPrefix(attr, "on")
}

// classifyAttribute returns the kind for an element attribute name.
func classifyAttribute(name string) AttrKind {
	switch {
	case name == "key":
		return AttrKey
	case name == "ref":
		return AttrRef
	case name == "class":
		return AttrClass
	case listenerAttributes[name]:
		return AttrListener
	case booleanAttributes[name]:
		return AttrBoolean
	}
	return AttrPlain
}
