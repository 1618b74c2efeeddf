package tools

import (
	"context"
	"fmt"

	"github.com/hashgraph-labs/ledgerkit/pkg/ledger"
	"github.com/hashgraph-labs/ledgerkit/pkg/registry"
	"github.com/hashgraph-labs/ledgerkit/pkg/schema"
)

func consensusEntries() []registry.Entry {
	return []registry.Entry{
		{
			Name:        "create_topic",
			Description: "Create a consensus topic.",
			Schema: schema.MustDefine("create_topic",
				schema.FieldSpec{Name: "memo", Type: schema.TypeString, Description: "Topic memo.", Default: ""},
			),
			Handler: createTopic,
		},
		{
			Name:        "update_topic",
			Description: "Update a topic's memo.",
			Schema: schema.MustDefine("update_topic",
				entityField("topic_id", "Topic to update.", true),
				schema.FieldSpec{Name: "memo", Type: schema.TypeString, Description: "New memo.", Required: true},
			),
			Handler: updateTopic,
		},
		{
			Name:        "delete_topic",
			Description: "Delete a topic.",
			Schema: schema.MustDefine("delete_topic",
				entityField("topic_id", "Topic to delete.", true),
			),
			Handler: deleteTopic,
		},
		{
			Name:        "submit_message",
			Description: "Submit a message to a topic.",
			Schema: schema.MustDefine("submit_message",
				entityField("topic_id", "Topic to publish to.", true),
				schema.FieldSpec{Name: "message", Type: schema.TypeString, Description: "Message contents.", Required: true, NonEmpty: true},
			),
			Handler: submitMessage,
		},
		{
			Name:        "get_topic_info",
			Description: "Get memo and sequence details for a topic.",
			Schema: schema.MustDefine("get_topic_info",
				entityField("topic_id", "Topic to query.", true),
			),
			Handler: getTopicInfo,
		},
		{
			Name:        "get_topic_messages",
			Description: "Fetch messages submitted to a topic, oldest first.",
			Schema: schema.MustDefine("get_topic_messages",
				entityField("topic_id", "Topic to read.", true),
				schema.FieldSpec{Name: "limit", Type: schema.TypeInt, Description: "Maximum messages to return. Zero means no cap.", Default: 0, MinInt: schema.Int64(0)},
			),
			Handler: getTopicMessages,
		},
	}
}

func createTopic(ctx context.Context, in schema.Values, client ledger.Client) (registry.Result, error) {
	rcpt, err := client.CreateTopic(ctx, ledger.CreateTopicRequest{Memo: in.String("memo")})
	if err != nil {
		return registry.Result{}, err
	}
	return registry.Result{
		Summary: fmt.Sprintf("Created topic %s.", rcpt.TopicID),
		Fields:  map[string]any{"topic_id": rcpt.TopicID.String(), "transaction_id": rcpt.TransactionID},
	}, nil
}

func updateTopic(ctx context.Context, in schema.Values, client ledger.Client) (registry.Result, error) {
	topicID := entityArg(in, "topic_id")
	rcpt, err := client.UpdateTopic(ctx, ledger.UpdateTopicRequest{
		TopicID: topicID,
		Memo:    in.String("memo"),
	})
	if err != nil {
		return registry.Result{}, err
	}
	return registry.Result{
		Summary: fmt.Sprintf("Updated topic %s.", topicID),
		Fields:  map[string]any{"topic_id": topicID.String(), "transaction_id": rcpt.TransactionID},
	}, nil
}

func deleteTopic(ctx context.Context, in schema.Values, client ledger.Client) (registry.Result, error) {
	topicID := entityArg(in, "topic_id")
	rcpt, err := client.DeleteTopic(ctx, topicID)
	if err != nil {
		return registry.Result{}, err
	}
	return registry.Result{
		Summary: fmt.Sprintf("Deleted topic %s.", topicID),
		Fields:  map[string]any{"topic_id": topicID.String(), "transaction_id": rcpt.TransactionID},
	}, nil
}

func submitMessage(ctx context.Context, in schema.Values, client ledger.Client) (registry.Result, error) {
	topicID := entityArg(in, "topic_id")
	rcpt, err := client.SubmitMessage(ctx, ledger.SubmitMessageRequest{
		TopicID: topicID,
		Message: []byte(in.String("message")),
	})
	if err != nil {
		return registry.Result{}, err
	}
	return registry.Result{
		Summary: fmt.Sprintf("Submitted message %d to topic %s.", rcpt.SequenceNumber, topicID),
		Fields: map[string]any{
			"topic_id":        topicID.String(),
			"sequence_number": rcpt.SequenceNumber,
			"transaction_id":  rcpt.TransactionID,
		},
	}, nil
}

func getTopicInfo(ctx context.Context, in schema.Values, client ledger.Client) (registry.Result, error) {
	topicID := entityArg(in, "topic_id")
	info, err := client.TopicInfo(ctx, topicID)
	if err != nil {
		return registry.Result{}, err
	}
	return registry.Result{
		Summary: fmt.Sprintf("Topic %s has %d messages.", topicID, info.SequenceNumber),
		Fields: map[string]any{
			"topic_id":        topicID.String(),
			"memo":            info.Memo,
			"sequence_number": info.SequenceNumber,
		},
	}, nil
}

func getTopicMessages(ctx context.Context, in schema.Values, client ledger.Client) (registry.Result, error) {
	topicID := entityArg(in, "topic_id")
	msgs, err := client.TopicMessages(ctx, ledger.TopicMessagesRequest{
		TopicID: topicID,
		Limit:   int(in.Int("limit")),
	})
	if err != nil {
		return registry.Result{}, err
	}
	out := make([]map[string]any, len(msgs))
	for i, m := range msgs {
		out[i] = map[string]any{
			"sequence_number": m.SequenceNumber,
			"message":         string(m.Contents),
		}
		if !m.ConsensusTime.IsZero() {
			out[i]["consensus_time"] = m.ConsensusTime
		}
	}
	return registry.Result{
		Summary: fmt.Sprintf("Topic %s returned %d messages.", topicID, len(msgs)),
		Fields: map[string]any{
			"topic_id": topicID.String(),
			"messages": out,
		},
	}, nil
}
