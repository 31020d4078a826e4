package spillman

// MsglogEntity is the messenger message extract. The message payload embeds
// an HTML document; only its text survives into the warehouse.
func MsglogEntity() Entity {
	return Entity{
		Name:        "Message Logs",
		Table:       "MessengerMessageTable",
		FilterField: "WhenReceived",
		TargetTable: "msglog",
		Windows:     QuarterDayWindows,
		Fields: []FieldSpec{
			{Source: "MessageNumber", Column: "msgid", Required: true},
			{Source: "MessageSender", Column: "from_user"},
			{Source: "Recipient", Column: "to_user"},
			{Source: "MessageSubject", Column: "subject"},
			{Source: "MessageData", Column: "message", Transform: StripTags},
			{Source: "WhenReceived", Column: "msgdate", Transform: DecodeDate, Default: sentinel},
		},
	}
}
