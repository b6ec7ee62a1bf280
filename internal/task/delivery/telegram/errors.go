package telegram

import "errors"

var errNoChat = errors.New("message has no chat")
