package analysis

import "fmt"

// systemInstruction frames the model as a fact-checking assistant. Kept in
// Chinese to match the front-end audience.
const systemInstruction = `你是一名专业的谣言鉴别助手。请判断用户提交的信息是否为谣言，` +
	`给出有理有据的分析结论，并模拟该信息在社交网络上的传播路径。`

const promptTemplate = `请分析以下信息的真实性：「%s」

要求：
1. 在 message 字段中用 Markdown 格式输出分析结论，包括判断依据和给读者的建议。
2. 在 isRumor 字段中给出该信息是否为谣言的判断。
3. 在 graphData 中构造 4-8 个传播节点。group 取值：1=信息源头，2=传播者，3=辟谣者。
4. 每个节点的 time 字段必须严格使用 "MM-DD HH:mm" 格式，且各节点时间应体现传播的先后顺序。
5. links 中的 source 和 target 必须引用已存在节点的 id，value 为 1 到 5 的整数，表示传播强度。
6. 如果无法为该信息构造合理的传播图（例如输入为空或无意义），graphData 返回 null。`

// buildPrompt embeds the user claim into the fixed analysis directives.
// The claim is passed through untouched regardless of length or language.
func buildPrompt(query string) string {
	return fmt.Sprintf(promptTemplate, query)
}
