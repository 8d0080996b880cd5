package apitype

// Command is the payload published with a topic.
type Command interface{}
