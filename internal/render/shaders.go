package render

const lightVertexShader = `
#version 330

in vec3 vertexPosition;
in vec3 vertexNormal;

uniform mat4 mvp;
uniform mat4 matModel;
uniform mat4 matNormal;

out vec3 fragNormal;
out vec3 fragWorldPos;

void main()
{
    fragWorldPos = vec3(matModel * vec4(vertexPosition, 1.0));
    fragNormal = normalize(vec3(matNormal * vec4(vertexNormal, 0.0)));
    gl_Position = mvp * vec4(vertexPosition, 1.0);
}
`

const lightFragmentShader = `
#version 330

in vec3 fragNormal;
in vec3 fragWorldPos;

uniform vec4 colDiffuse; // Raylib passa o tint do draw aqui

// Luz direcional + termo ambiente
uniform vec3 lightDir;
uniform vec3 lightColor;
uniform float lightIntensity;
uniform vec3 ambientColor;
uniform float ambientLevel;

out vec4 finalColor;

void main()
{
    vec3 n = normalize(fragNormal);
    float diff = max(dot(n, -normalize(lightDir)), 0.0);

    vec3 light = ambientColor * ambientLevel + lightColor * lightIntensity * diff;
    vec3 rgb = colDiffuse.rgb * light;

    finalColor = vec4(min(rgb, vec3(1.0)), colDiffuse.a);
}
`
