package it

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sync"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	hlcpb "hybridclock/internal/gen/api"
)

// Cluster represents a test cluster of nodes
type Cluster struct {
	nodes      []*Node
	logDir     string
	binaryPath string
	mu         sync.Mutex
}

// Node represents a single node in the test cluster
type Node struct {
	ID      string
	Addr    string
	Port    int
	cmd     *exec.Cmd
	logFile *os.File
	conn    *grpc.ClientConn
	client  hlcpb.ClockSyncClient
}

// NewCluster creates a new test cluster harness
func NewCluster(binaryPath string) (*Cluster, error) {
	logDir := filepath.Join(".local", "it-logs")
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	return &Cluster{
		nodes:      make([]*Node, 0),
		logDir:     logDir,
		binaryPath: binaryPath,
	}, nil
}

// StartNode starts a single node in the cluster
func (c *Cluster) StartNode(ctx context.Context, nodeID string, port int, peers []string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	peerStr := ""
	for i, p := range peers {
		if i > 0 {
			peerStr += ","
		}
		peerStr += p
	}

	addr := fmt.Sprintf(":%d", port)
	logPath := filepath.Join(c.logDir, fmt.Sprintf("%s.log", nodeID))
	logFile, err := os.Create(logPath)
	if err != nil {
		return fmt.Errorf("failed to create log file: %w", err)
	}

	cmd := exec.CommandContext(ctx, c.binaryPath,
		"--node-id", nodeID,
		"--listen", addr,
		"--peers", peerStr,
		"--max-offset", "500ms",
		"--beacon-interval", "200ms",
	)
	cmd.Stdout = logFile
	cmd.Stderr = logFile

	if err := cmd.Start(); err != nil {
		logFile.Close()
		return fmt.Errorf("failed to start node %s: %w", nodeID, err)
	}

	conn, err := grpc.NewClient(
		fmt.Sprintf("127.0.0.1:%d", port),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		cmd.Process.Kill()
		logFile.Close()
		return fmt.Errorf("failed to dial node %s: %w", nodeID, err)
	}

	node := &Node{
		ID:      nodeID,
		Addr:    fmt.Sprintf("127.0.0.1:%d", port),
		Port:    port,
		cmd:     cmd,
		logFile: logFile,
		conn:    conn,
		client:  hlcpb.NewClockSyncClient(conn),
	}
	c.nodes = append(c.nodes, node)

	// Wait for node to be ready
	if err := c.waitForReady(ctx, node, 10*time.Second); err != nil {
		node.Stop()
		return fmt.Errorf("node %s failed to become ready: %w", nodeID, err)
	}

	return nil
}

// waitForReady waits for a node to be ready by checking the health endpoint
func (c *Cluster) waitForReady(ctx context.Context, node *Node, timeout time.Duration) error {
	deadline := time.Now().Add(timeout)
	ticker := time.NewTicker(200 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if time.Now().After(deadline) {
				return fmt.Errorf("timeout waiting for node %s to be ready", node.ID)
			}

			healthCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
			_, err := node.client.Health(healthCtx, &hlcpb.HealthRequest{})
			cancel()

			if err == nil {
				return nil
			}
		}
	}
}

// Stop stops all nodes in the cluster
func (c *Cluster) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, node := range c.nodes {
		node.Stop()
	}
	c.nodes = nil
}

// Stop stops a single node
func (n *Node) Stop() {
	if n.conn != nil {
		n.conn.Close()
	}
	if n.cmd != nil && n.cmd.Process != nil {
		n.cmd.Process.Kill()
		n.cmd.Wait()
	}
	if n.logFile != nil {
		n.logFile.Close()
	}
}

// GetClient returns the ClockSync client for a node
func (n *Node) GetClient() hlcpb.ClockSyncClient {
	return n.client
}

// StartCluster starts a 3-node cluster with every node knowing every
// other node up front
func (c *Cluster) StartCluster(ctx context.Context) error {
	if c.binaryPath == "" {
		c.binaryPath = "./hlcd"
	}
	if _, err := os.Stat(c.binaryPath); os.IsNotExist(err) {
		return fmt.Errorf("binary not found at %s, build it first with 'go build -o hlcd ./cmd/hlcd'", c.binaryPath)
	}

	basePort := 60051
	for i := 1; i <= 3; i++ {
		nodeID := fmt.Sprintf("n%d", i)
		port := basePort + i - 1

		peers := make([]string, 0, 2)
		for j := 1; j <= 3; j++ {
			if j != i {
				peers = append(peers, fmt.Sprintf("n%d=127.0.0.1:%d", j, basePort+j-1))
			}
		}

		if err := c.StartNode(ctx, nodeID, port, peers); err != nil {
			c.Stop()
			return fmt.Errorf("failed to start node %s: %w", nodeID, err)
		}
	}

	return nil
}

// GetNode returns a node by ID
func (c *Cluster) GetNode(nodeID string) *Node {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, node := range c.nodes {
		if node.ID == nodeID {
			return node
		}
	}
	return nil
}

// KillNode kills a node's process without removing it from the cluster
func (c *Cluster) KillNode(nodeID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, node := range c.nodes {
		if node.ID == nodeID {
			if node.cmd != nil && node.cmd.Process != nil {
				if err := node.cmd.Process.Kill(); err != nil {
					return err
				}
				node.cmd.Wait()
			}
			return nil
		}
	}
	return fmt.Errorf("node %s not found", nodeID)
}
