package keeper

import (
	"github.com/google/btree"
	"github.com/openalpha/joinbox/matching/types"
)

// shardItem wraps one partition's CaseHandler for use in a btree, keyed by
// the case's uniting-variable key (spec §4.6). Implements btree.Item.
type shardItem[M any] struct {
	key     any
	less    func(a, b any) bool
	handler CaseHandler[M]
}

func (a *shardItem[M]) Less(b btree.Item) bool {
	return a.less(a.key, b.(*shardItem[M]).key)
}

// PartitionsMatcher shards a case's matching work by uniting-variable key:
// each distinct key gets its own independent inner matcher, so a message can
// only ever be checked against the (typically one) shard its key selects
// rather than the whole case. It is middleware: the inner matcher it builds
// per shard is itself a full CaseHandler, usually a StatefulTreeMatcher.
type PartitionsMatcher[M any] struct {
	artifact *types.CaseArtifact[M]
	newInner func(*types.CaseArtifact[M]) CaseHandler[M]
	shards   *btree.BTree
}

// NewPartitionsMatcher builds an empty PartitionsMatcher. newInner is called
// once per newly observed key to build that shard's matcher; artifact must be
// partitionable (artifact.Partitionable() == true).
func NewPartitionsMatcher[M any](artifact *types.CaseArtifact[M], newInner func(*types.CaseArtifact[M]) CaseHandler[M]) *PartitionsMatcher[M] {
	return &PartitionsMatcher[M]{
		artifact: artifact,
		newInner: newInner,
		shards:   btree.New(32),
	}
}

func (p *PartitionsMatcher[M]) Size() int { return p.artifact.Size }

func (p *PartitionsMatcher[M]) IsEmpty() bool { return p.shards.Len() == 0 }

func (p *PartitionsMatcher[M]) shardFor(key any) *shardItem[M] {
	probe := &shardItem[M]{key: key, less: p.artifact.KeyLess}
	if item := p.shards.Get(probe); item != nil {
		return item.(*shardItem[M])
	}
	probe.handler = p.newInner(p.artifact)
	p.shards.ReplaceOrInsert(probe)
	return probe
}

// Consume implements CaseHandler. A message whose key extraction fails (it
// does not carry this case's uniting variable) is never accepted: the
// partitions middleware only ever forwards messages it can shard.
func (p *PartitionsMatcher[M]) Consume(id types.MessageID, store Store[M]) (types.MatchedIDs, bool) {
	msg, ok := store.Get(id)
	if !ok {
		return nil, false
	}
	key, ok := p.artifact.Key(msg)
	if !ok {
		return nil, false
	}
	return p.shardFor(key).handler.Consume(id, store)
}

// Remove implements CaseHandler. Each id's shard key is recomputed from
// store, which still holds every message in ids at this point; ids are
// expected to collapse onto a single shard (spec §4.6, P2), but Remove
// tolerates a winning match spanning more than one shard key by routing each
// id to its own shard's Remove. Any shard left empty afterward is evicted.
func (p *PartitionsMatcher[M]) Remove(ids types.MatchedIDs, store Store[M]) {
	byShard := make(map[any]types.MatchedIDs)
	for _, id := range ids {
		msg, ok := store.Get(id)
		if !ok {
			continue
		}
		key, ok := p.artifact.Key(msg)
		if !ok {
			continue
		}
		byShard[key] = append(byShard[key], id)
	}
	for key, shardIDs := range byShard {
		item := p.shards.Get(&shardItem[M]{key: key, less: p.artifact.KeyLess})
		if item == nil {
			continue
		}
		shard := item.(*shardItem[M])
		shard.handler.Remove(shardIDs, store)
		if shard.handler.IsEmpty() {
			p.shards.Delete(shard)
		}
	}
}

// Reset implements CaseHandler.
func (p *PartitionsMatcher[M]) Reset() {
	p.shards = btree.New(32)
}
