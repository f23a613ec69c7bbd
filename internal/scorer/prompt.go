package scorer

import "fmt"

const systemPrompt = `Tu es un analyste en sécurité des systèmes d'information.
On te donne une exigence de sécurité et un tag d'une taxonomie (libellé et description).
Évalue la pertinence du tag pour l'exigence avec l'échelle suivante :
4 = correspondance directe, le tag est explicitement visé par l'exigence ;
3 = correspondance forte, thématique directement liée ;
2 = lien indirect, pertinent dans le contexte général ;
0 = aucun lien.
Réponds uniquement avec un objet JSON {"level": <0|2|3|4>, "justification": "<une phrase en français>"}.`

func userPrompt(requirement, tagLabel, description string) string {
	return fmt.Sprintf("Exigence :\n%s\n\nTag : %s\nDescription : %s", requirement, tagLabel, description)
}
