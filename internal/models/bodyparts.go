package models

// BodySide tells which body diagram a region is drawn on.
type BodySide string

const (
	BodyFront BodySide = "front"
	BodyBack  BodySide = "back"
)

// BodyPart is one selectable region of the pain map.
type BodyPart struct {
	ID   string   `json:"id"`
	Name string   `json:"name"`
	Side BodySide `json:"side"`
}

var bodyParts = []BodyPart{
	{ID: "head-front", Name: "Cabeça (Frente)", Side: BodyFront},
	{ID: "neck-front", Name: "Pescoço", Side: BodyFront},
	{ID: "shoulder-left", Name: "Ombro Esq.", Side: BodyFront},
	{ID: "shoulder-right", Name: "Ombro Dir.", Side: BodyFront},
	{ID: "chest-left", Name: "Peitoral Esq.", Side: BodyFront},
	{ID: "chest-right", Name: "Peitoral Dir.", Side: BodyFront},
	{ID: "abs-upper", Name: "Abdômen Sup.", Side: BodyFront},
	{ID: "abs-lower", Name: "Abdômen Inf.", Side: BodyFront},
	{ID: "pelvis", Name: "Pélvis", Side: BodyFront},
	{ID: "arm-upper-left", Name: "Bíceps Esq.", Side: BodyFront},
	{ID: "elbow-left", Name: "Cotovelo Esq.", Side: BodyFront},
	{ID: "forearm-left", Name: "Antebraço Esq.", Side: BodyFront},
	{ID: "wrist-left", Name: "Punho Esq.", Side: BodyFront},
	{ID: "hand-left", Name: "Mão Esq.", Side: BodyFront},
	{ID: "arm-upper-right", Name: "Bíceps Dir.", Side: BodyFront},
	{ID: "elbow-right", Name: "Cotovelo Dir.", Side: BodyFront},
	{ID: "forearm-right", Name: "Antebraço Dir.", Side: BodyFront},
	{ID: "wrist-right", Name: "Punho Dir.", Side: BodyFront},
	{ID: "hand-right", Name: "Mão Dir.", Side: BodyFront},
	{ID: "thigh-left", Name: "Coxa Esq.", Side: BodyFront},
	{ID: "knee-left", Name: "Joelho Esq.", Side: BodyFront},
	{ID: "shin-left", Name: "Canela Esq.", Side: BodyFront},
	{ID: "ankle-left", Name: "Tornozelo Esq.", Side: BodyFront},
	{ID: "foot-left", Name: "Pé Esq.", Side: BodyFront},
	{ID: "thigh-right", Name: "Coxa Dir.", Side: BodyFront},
	{ID: "knee-right", Name: "Joelho Dir.", Side: BodyFront},
	{ID: "shin-right", Name: "Canela Dir.", Side: BodyFront},
	{ID: "ankle-right", Name: "Tornozelo Dir.", Side: BodyFront},
	{ID: "foot-right", Name: "Pé Dir.", Side: BodyFront},
	{ID: "head-back", Name: "Nuca", Side: BodyBack},
	{ID: "neck-back", Name: "Pescoço (Post.)", Side: BodyBack},
	{ID: "shoulder-blade-left", Name: "Escápula Esq.", Side: BodyBack},
	{ID: "shoulder-blade-right", Name: "Escápula Dir.", Side: BodyBack},
	{ID: "back-mid", Name: "Dorsal", Side: BodyBack},
	{ID: "back-lower", Name: "Lombar", Side: BodyBack},
	{ID: "glute-left", Name: "Glúteo Esq.", Side: BodyBack},
	{ID: "glute-right", Name: "Glúteo Dir.", Side: BodyBack},
	{ID: "arm-back-upper-left", Name: "Tríceps Esq.", Side: BodyBack},
	{ID: "elbow-back-left", Name: "Cotovelo Esq.", Side: BodyBack},
	{ID: "forearm-back-left", Name: "Antebraço Post. Esq.", Side: BodyBack},
	{ID: "wrist-back-left", Name: "Punho Esq.", Side: BodyBack},
	{ID: "hand-back-left", Name: "Mão Post. Esq.", Side: BodyBack},
	{ID: "arm-back-upper-right", Name: "Tríceps Dir.", Side: BodyBack},
	{ID: "elbow-back-right", Name: "Cotovelo Dir.", Side: BodyBack},
	{ID: "forearm-back-right", Name: "Antebraço Post. Dir.", Side: BodyBack},
	{ID: "wrist-back-right", Name: "Punho Dir.", Side: BodyBack},
	{ID: "hand-back-right", Name: "Mão Post. Dir.", Side: BodyBack},
	{ID: "thigh-back-left", Name: "Posterior Coxa Esq.", Side: BodyBack},
	{ID: "knee-back-left", Name: "Fossa Poplítea Esq.", Side: BodyBack},
	{ID: "calf-left", Name: "Panturrilha Esq.", Side: BodyBack},
	{ID: "ankle-back-left", Name: "Tendão Aquiles Esq.", Side: BodyBack},
	{ID: "heel-left", Name: "Calcanhar Esq.", Side: BodyBack},
	{ID: "thigh-back-right", Name: "Posterior Coxa Dir.", Side: BodyBack},
	{ID: "knee-back-right", Name: "Fossa Poplítea Dir.", Side: BodyBack},
	{ID: "calf-right", Name: "Panturrilha Dir.", Side: BodyBack},
	{ID: "ankle-back-right", Name: "Tendão Aquiles Dir.", Side: BodyBack},
	{ID: "heel-right", Name: "Calcanhar Dir.", Side: BodyBack},
}

var bodyPartIndex = func() map[string]BodyPart {
	m := make(map[string]BodyPart, len(bodyParts))
	for _, p := range bodyParts {
		m[p.ID] = p
	}
	return m
}()

// BodyParts returns every region, front view first.
func BodyParts() []BodyPart {
	return append([]BodyPart(nil), bodyParts...)
}

func BodyPartByID(id string) (BodyPart, bool) {
	p, ok := bodyPartIndex[id]
	return p, ok
}
