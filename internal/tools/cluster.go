package tools

import (
	"context"
	"sort"
	"time"

	"github.com/mugiliam/saasbench/internal/common"
	"github.com/mugiliam/saasbench/internal/workspace"
)

// ListClusters lists all compute clusters, ordered by cluster id.
func ListClusters(ctx context.Context, state *workspace.State, args Args) (*workspace.State, Response) {
	ids := make([]string, 0, len(state.Clusters))
	for id := range state.Clusters {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	clusterList := make([]Response, 0, len(ids))
	for _, id := range ids {
		c := state.Clusters[id]
		clusterList = append(clusterList, Response{
			"cluster_id":  c.ClusterID,
			"name":        c.Name,
			"state":       c.State,
			"node_type":   c.NodeType,
			"num_workers": c.NumWorkers,
		})
	}
	return state, Response{"clusters": clusterList}
}

// CreateCluster creates a cluster with a fresh generated id, directly in the
// RUNNING state. The policy cluster ceiling is advisory and not enforced
// here.
func CreateCluster(ctx context.Context, state *workspace.State, args Args) (*workspace.State, Response) {
	name := args.str("name")
	nodeType := args.strOr("node_type", "i3.xlarge")
	numWorkers := args.intOr("num_workers", 1)
	sparkVersion := args.strOr("spark_version", "13.3.x-scala2.12")

	if name == "" {
		return state, errorf("name is required")
	}

	clusterID := common.IdGeneratorFromContext(ctx)()
	newCluster := workspace.Cluster{
		ClusterID:    clusterID,
		Name:         name,
		State:        "RUNNING",
		NodeType:     nodeType,
		NumWorkers:   numWorkers,
		SparkVersion: sparkVersion,
		CreatedAt:    time.Now(),
	}
	newState := state.WithCluster(clusterID, newCluster)
	return newState, Response{"success": true, "cluster_id": clusterID}
}
