package presets

var writingSamples = []WritingSample{
	{
		ID:       "formal-functional-relationships",
		Name:     "Formal and Functional Relationships",
		Preview:  "There are two broad types of relationships: formal and functional...",
		Content:  "There are two broad types of relationships: formal and functional. Formal relationships hold between descriptions. A description is any statement that can be true or false. Example of a formal relationship: The description that a shape is a square cannot be true unless the description that it has four equal sides is true. Therefore, a shape's being a square depends on its having four equal sides. Functional relationships hold between events or conditions. (An event is anything that happens in time.) Example of a functional relationship: A plant cannot grow without water. Therefore, a plant's growth depends on its receiving water. The first type is structural, i.e., it holds between statements about features. The second is operational, i.e., it holds between things in the world as they act or change. Descriptions as objects of consideration. The objects of evaluation are descriptions. Something is not evaluated unless it is described, and it is not described unless it can be stated. One can notice non-descriptions — sounds, objects, movements — but in the relevant sense one evaluates descriptions of them. Relationships not known through direct observation. Some relationships are known, not through direct observation, but through reasoning. Such relationships are structural, as opposed to observational. Examples of structural relationships are: If A, then A or B. All tools require some form of use. Nothing can be both moving and perfectly still. There are no rules without conditions. 1 obviously expresses a relationship; 2–4 do so less obviously, as their meanings are: 2*. A tool's being functional depends on its being usable. 3*. An object's being both moving and still depends on contradictory conditions, which cannot occur together. 4*. The existence of rules depends on the existence of conditions to which they apply. Structural truth and structural understanding. Structural understanding is always understanding of relationships. Observational understanding can be either direct or indirect; the same is true of structural understanding.",
		Category: "Content-Neutral",
	},
	{
		ID:       "loser-paradox",
		Name:     "The Loser Paradox",
		Preview:  "People at the bottom of hierarchies...",
		Content:  "People who are the bottom of a hierarchy are far less likely to spurn that hierarchy than they are to use it against people who are trying to climb the ranks of that hierarchy. The person who never graduates from college may in some contexts claim that a college degree is worthless, but he is unlikely to act accordingly. When he comes across someone without a college degree who is trying to make something of himself, he is likely to pounce on that person, claiming he is an uncredentialed fraud. Explanation: Losers want others to share their coffin, and if that involves hyper-valuing the very people or institutions that put them in that coffin, then so be it.",
		Category: "Paradoxes",
	},
	{
		ID:       "sour-secretary-paradox",
		Name:     "Sour Secretary Paradox",
		Preview:  "The more useless an employee is...",
		Content:  "The more useless a given employee is to the organization that employs her, the more unstintingly she will toe that organization's line. This is a corollary of the loser paradox.",
		Category: "Paradoxes",
	},
	{
		ID:       "connectedness-paradox",
		Name:     "Paradox of Connectedness",
		Preview:  "Communications technology separates us...",
		Content:  "Communications technology is supposed to connect us but separates us into self-contained, non-interacting units. Solution: Communications technology is not supposed to connect us emotionally. On the contrary, it is supposed to connect us in such a way that we can transact without having to bond emotionally. And that is what it does. It connects us logically while disconnecting us emotionally.",
		Category: "Paradoxes",
	},
	{
		ID:       "analysis-paralysis-paradox",
		Name:     "Analysis Paralysis Paradox",
		Preview:  "The ability to identify rational courses...",
		Content:  "Given that there is almost always a more rational course of action, the ability to identify rational courses of action may lead to a failure to act. Solution: There is a difference between intelligence and rationality. Intelligence answers the question: What is it objectively possible to do? Rationality answers the question: What do my limited resources of time, energy and intelligence make it incumbent on me to do? And the second answer breaks any deadlocks created by the first.",
		Category: "Paradoxes",
	},
}

// DefaultSampleID is the style sample applied when a rewrite request names
// none.
const DefaultSampleID = "formal-functional-relationships"

var sampleIndex = func() map[string]WritingSample {
	m := make(map[string]WritingSample, len(writingSamples))
	for _, s := range writingSamples {
		m[s.ID] = s
	}
	return m
}()

func Samples() []WritingSample {
	return writingSamples
}

func SampleByID(id string) (WritingSample, bool) {
	s, ok := sampleIndex[id]
	return s, ok
}
