package system

// GroundedListener is notified when the character lands or leaves the ground.
// impactSpeed is the absolute vertical speed at landing and 0 when leaving.
type GroundedListener interface {
	OnGroundedChanged(grounded bool, impactSpeed float64)
}

// JumpListener is notified when a jump impulse fires
type JumpListener interface {
	OnJumped()
}

// GroundedFunc adapts a function to GroundedListener
type GroundedFunc func(grounded bool, impactSpeed float64)

func (f GroundedFunc) OnGroundedChanged(grounded bool, impactSpeed float64) { f(grounded, impactSpeed) }

// JumpFunc adapts a function to JumpListener
type JumpFunc func()

func (f JumpFunc) OnJumped() { f() }

// Subscription is a handle returned by Subscribe. The zero value is never issued.
type Subscription uint64

// NoSubscription is returned when a value implements none of the listener interfaces
const NoSubscription Subscription = 0

type subscriber struct {
	id       Subscription
	grounded GroundedListener
	jumped   JumpListener
}

// eventBus is an ordered side table of subscribers keyed by handle
type eventBus struct {
	next Subscription
	subs []subscriber
}

// Subscribe registers every listener capability l implements.
// Listeners are called in subscription order.
func (c *CharacterController) Subscribe(l any) Subscription {
	g, _ := l.(GroundedListener)
	j, _ := l.(JumpListener)
	if g == nil && j == nil {
		return NoSubscription
	}
	return c.events.add(g, j)
}

// SubscribeGrounded registers fn for GroundedChanged events
func (c *CharacterController) SubscribeGrounded(fn func(grounded bool, impactSpeed float64)) Subscription {
	return c.events.add(GroundedFunc(fn), nil)
}

// SubscribeJumped registers fn for Jumped events
func (c *CharacterController) SubscribeJumped(fn func()) Subscription {
	return c.events.add(nil, JumpFunc(fn))
}

// Unsubscribe removes the subscription. Unknown handles are ignored.
func (c *CharacterController) Unsubscribe(s Subscription) {
	c.events.remove(s)
}

func (b *eventBus) add(g GroundedListener, j JumpListener) Subscription {
	b.next++
	b.subs = append(b.subs, subscriber{id: b.next, grounded: g, jumped: j})
	return b.next
}

func (b *eventBus) remove(id Subscription) {
	for i, s := range b.subs {
		if s.id == id {
			// copy-on-write so an in-flight dispatch keeps its snapshot
			subs := make([]subscriber, 0, len(b.subs)-1)
			subs = append(subs, b.subs[:i]...)
			b.subs = append(subs, b.subs[i+1:]...)
			return
		}
	}
}

func (b *eventBus) emitGrounded(grounded bool, impactSpeed float64) {
	for _, s := range b.subs {
		if s.grounded != nil {
			s.grounded.OnGroundedChanged(grounded, impactSpeed)
		}
	}
}

func (b *eventBus) emitJumped() {
	for _, s := range b.subs {
		if s.jumped != nil {
			s.jumped.OnJumped()
		}
	}
}
