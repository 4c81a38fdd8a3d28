package api

import (
	"encoding/json"
	"errors"
	"fmt"
)

// MessageType дискриминатор сообщения протокола синхронизации (поле "type").
type MessageType string

const (
	TypeInit   MessageType = "init"   // server→client: начальный снимок документа
	TypeUpdate MessageType = "update" // оба направления: полная замена документа
	TypeCursor MessageType = "cursor" // оба направления: позиция курсора
	TypeError  MessageType = "error"  // server→client: нефатальная ошибка
)

var (
	// ErrMalformedMessage сообщение не удалось разобрать
	ErrMalformedMessage = errors.New("malformed message")

	// ErrUnknownMessageType неизвестное значение поля type
	ErrUnknownMessageType = errors.New("unknown message type")
)

// Message закрытый интерфейс сообщений протокола.
// Реализуется только типами Init, Update, Cursor и Error этого пакета,
// поэтому type switch по ним исчерпывающий.
type Message interface {
	Type() MessageType
	isMessage()
}

// Init начальный снимок документа, отправляется сервером при подключении.
type Init struct {
	Content  string `json:"content"`
	Revision int64  `json:"revision,omitempty"`
}

// Update полная замена содержимого документа.
type Update struct {
	Content    string `json:"content"`
	UserID     string `json:"userId"`
	DocumentID string `json:"documentId"`
	Revision   int64  `json:"revision,omitempty"`
}

// Cursor позиция курсора участника.
type Cursor struct {
	UserID     string `json:"userId"`
	DocumentID string `json:"documentId"`
	Position   int    `json:"position"`
}

// Error нефатальная ошибка протокола или приложения.
type Error struct {
	Message string `json:"message"`
}

func (Init) Type() MessageType   { return TypeInit }
func (Update) Type() MessageType { return TypeUpdate }
func (Cursor) Type() MessageType { return TypeCursor }
func (Error) Type() MessageType  { return TypeError }

func (Init) isMessage()   {}
func (Update) isMessage() {}
func (Cursor) isMessage() {}
func (Error) isMessage()  {}

// envelope читает только дискриминатор
type envelope struct {
	Type MessageType `json:"type"`
}

// Encode сериализует сообщение в JSON объект с полем type.
func Encode(msg Message) ([]byte, error) {
	var (
		data []byte
		err  error
	)

	switch m := msg.(type) {
	case Init:
		data, err = json.Marshal(struct {
			Type MessageType `json:"type"`
			Init
		}{TypeInit, m})
	case Update:
		data, err = json.Marshal(struct {
			Type MessageType `json:"type"`
			Update
		}{TypeUpdate, m})
	case Cursor:
		data, err = json.Marshal(struct {
			Type MessageType `json:"type"`
			Cursor
		}{TypeCursor, m})
	case Error:
		data, err = json.Marshal(struct {
			Type MessageType `json:"type"`
			Error
		}{TypeError, m})
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnknownMessageType, msg)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to marshal %s message: %w", msg.Type(), err)
	}
	return data, nil
}

// Decode разбирает JSON объект в конкретный тип сообщения.
// Возвращает ошибку, обернутую в ErrMalformedMessage или ErrUnknownMessageType.
func Decode(data []byte) (Message, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedMessage, err)
	}

	switch env.Type {
	case TypeInit:
		var m Init
		if err := json.Unmarshal(data, &m); err != nil {
			return nil, fmt.Errorf("%w: init: %v", ErrMalformedMessage, err)
		}
		return m, nil
	case TypeUpdate:
		var m Update
		if err := json.Unmarshal(data, &m); err != nil {
			return nil, fmt.Errorf("%w: update: %v", ErrMalformedMessage, err)
		}
		if m.UserID == "" {
			return nil, fmt.Errorf("%w: update without userId", ErrMalformedMessage)
		}
		return m, nil
	case TypeCursor:
		var m Cursor
		if err := json.Unmarshal(data, &m); err != nil {
			return nil, fmt.Errorf("%w: cursor: %v", ErrMalformedMessage, err)
		}
		if m.UserID == "" {
			return nil, fmt.Errorf("%w: cursor without userId", ErrMalformedMessage)
		}
		return m, nil
	case TypeError:
		var m Error
		if err := json.Unmarshal(data, &m); err != nil {
			return nil, fmt.Errorf("%w: error: %v", ErrMalformedMessage, err)
		}
		return m, nil
	case "":
		return nil, fmt.Errorf("%w: missing type", ErrMalformedMessage)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMessageType, env.Type)
	}
}
