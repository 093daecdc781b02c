package pubsub

import (
	"context"
	"fmt"
	"log"

	pubsubV2 "cloud.google.com/go/pubsub/v2"
	"cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"github.com/cleitonmarx/symbiont/depend"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// InitClient creates the Pub/Sub client shared by the run event publisher and subscriber.
// PUBSUB_EMULATOR_HOST is honored by the client library.
type InitClient struct {
	Logger         *log.Logger `resolve:""`
	ProjectID      string      `config:"PUBSUB_PROJECT_ID"`
	TopicID        string      `config:"PUBSUB_RUNS_TOPIC" default:"orchestration-runs"`
	SubscriptionID string      `config:"PUBSUB_RUNS_SUBSCRIPTION_ID" default:"orchestration-runs-sub"`
	// Create the runs topic and subscription when missing (emulator setups)
	EnsureTopology bool `config:"PUBSUB_ENSURE_TOPOLOGY" default:"false"`
	client         *pubsubV2.Client
}

func (i *InitClient) Initialize(ctx context.Context) (context.Context, error) {
	if i.client == nil {
		client, err := pubsubV2.NewClient(ctx, i.ProjectID)
		if err != nil {
			return ctx, fmt.Errorf("failed to create pubsub client: %w", err)
		}
		i.client = client
	}

	if i.EnsureTopology {
		if err := ensureTopology(ctx, i.client, i.ProjectID, i.TopicID, i.SubscriptionID); err != nil {
			return ctx, err
		}
		i.Logger.Printf("InitClient: topic %s and subscription %s are ready", i.TopicID, i.SubscriptionID)
	}

	depend.Register(i.client)

	return ctx, nil
}

func (i *InitClient) Close() {
	if i.client == nil {
		return
	}
	if err := i.client.Close(); err != nil {
		i.Logger.Printf("InitClient: failed to close pubsub client: %v", err)
	}
}

// ensureTopology creates the topic and its subscription. Existing resources are kept.
func ensureTopology(ctx context.Context, client *pubsubV2.Client, projectID, topicID, subscriptionID string) error {
	topicName := fmt.Sprintf("projects/%s/topics/%s", projectID, topicID)
	_, err := client.TopicAdminClient.CreateTopic(ctx, &pubsubpb.Topic{Name: topicName})
	if err != nil && status.Code(err) != codes.AlreadyExists {
		return fmt.Errorf("failed to create topic %s: %w", topicID, err)
	}

	subName := fmt.Sprintf("projects/%s/subscriptions/%s", projectID, subscriptionID)
	_, err = client.SubscriptionAdminClient.CreateSubscription(ctx, &pubsubpb.Subscription{
		Name:  subName,
		Topic: topicName,
	})
	if err != nil && status.Code(err) != codes.AlreadyExists {
		return fmt.Errorf("failed to create subscription %s: %w", subscriptionID, err)
	}
	return nil
}
